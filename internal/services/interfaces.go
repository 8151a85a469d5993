package services

import (
	"context"
	"time"

	"privatemarkets/internal/analytics"
	"privatemarkets/internal/models"
)

// FundInput carries every writable fund field. Updates replace all of them.
type FundInput struct {
	Name          string
	VintageYear   int
	TargetSizeUSD float64
	Status        models.FundStatus
}

// FundServicer defines the contract for fund-related business logic.
type FundServicer interface {
	GetAllFunds(ctx context.Context) ([]models.Fund, error)
	GetFundByID(ctx context.Context, id string) (*models.Fund, error)
	CreateFund(ctx context.Context, input FundInput) (*models.Fund, error)
	UpdateFund(ctx context.Context, id string, input FundInput) (*models.Fund, error)
}

// InvestorInput carries the fields of a new investor.
type InvestorInput struct {
	Name         string
	InvestorType models.InvestorType
	Email        string
}

// InvestorServicer defines the contract for investor-related business logic.
type InvestorServicer interface {
	GetAllInvestors(ctx context.Context) ([]models.Investor, error)
	GetInvestorByID(ctx context.Context, id string) (*models.Investor, error)
	CreateInvestor(ctx context.Context, input InvestorInput) (*models.Investor, error)
}

// InvestmentInput carries the fields of a new investment.
type InvestmentInput struct {
	FundID         string
	InvestorID     string
	AmountUSD      float64
	InvestmentDate time.Time
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	GetInvestmentsByFundID(ctx context.Context, fundID string) ([]models.Investment, error)
	GetInvestmentByID(ctx context.Context, id string) (*models.Investment, error)
	CreateInvestment(ctx context.Context, input InvestmentInput) (*models.Investment, error)
}

// AnalyticsServicer defines the contract for fund analytics.
type AnalyticsServicer interface {
	GetFundAnalytics(ctx context.Context, fundID string) (*analytics.FundAnalytics, error)
}

// AuditEntry describes one write to be recorded. Changes holds the
// written field values keyed by their JSON names.
type AuditEntry struct {
	Action       string
	ResourceType string
	ResourceID   string
	IPAddress    string
	RequestID    string
	Changes      map[string]interface{}
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, entry AuditEntry)
}

// Audit actions and resource types.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"

	AuditResourceFund       = "fund"
	AuditResourceInvestor   = "investor"
	AuditResourceInvestment = "investment"
)
