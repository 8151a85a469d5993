package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"privatemarkets/internal/database"
	apperrors "privatemarkets/internal/errors"
	"privatemarkets/internal/models"
)

// investmentService handles investment-related business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// GetInvestmentsByFundID lists a fund's investments, most recent investment
// date first. An unknown fund simply has no investments.
func (s *investmentService) GetInvestmentsByFundID(ctx context.Context, fundID string) ([]models.Investment, error) {
	investments := []models.Investment{}

	fundID, err := normalizeID(fundID, apperrors.ErrFundNotFound)
	if err != nil {
		return investments, nil
	}

	if err := s.db.WithContext(ctx).
		Where("fund_id = ?", fundID).
		Order("investment_date DESC, created_at DESC, id DESC").
		Find(&investments).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return investments, nil
}

// GetInvestmentByID retrieves an investment by ID with its investor.
func (s *investmentService) GetInvestmentByID(ctx context.Context, id string) (*models.Investment, error) {
	id, err := normalizeID(id, apperrors.ErrInvestmentNotFound)
	if err != nil {
		return nil, err
	}

	var investment models.Investment
	if err := s.db.WithContext(ctx).Preload("Investor").Where("id = ?", id).First(&investment).Error; err != nil {
		return nil, database.TranslateNotFound(err, apperrors.ErrInvestmentNotFound)
	}
	return &investment, nil
}

// CreateInvestment records a commitment by an investor into a fund. Both
// must already exist; otherwise the datastore rejects the row and nothing
// is written.
func (s *investmentService) CreateInvestment(ctx context.Context, input InvestmentInput) (*models.Investment, error) {
	fundID, err := normalizeID(input.FundID, apperrors.ErrReferencedRecordMissing)
	if err != nil {
		return nil, err
	}
	investorID, err := normalizeID(input.InvestorID, apperrors.ErrReferencedRecordMissing)
	if err != nil {
		return nil, err
	}
	if input.AmountUSD < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount_usd must be at least 0")
	}

	y, m, d := input.InvestmentDate.Date()
	investment := &models.Investment{
		FundID:         fundID,
		InvestorID:     investorID,
		AmountUSD:      roundCents(input.AmountUSD),
		InvestmentDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
	if err := s.db.WithContext(ctx).Create(investment).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return investment, nil
}
