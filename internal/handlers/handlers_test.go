package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"privatemarkets/internal/analytics"
	"privatemarkets/internal/middleware"
	"privatemarkets/internal/models"
	"privatemarkets/internal/services"
	"privatemarkets/internal/validator"
)

// --- mock services ---

type mockFundService struct {
	getAllFundsFn func(ctx context.Context) ([]models.Fund, error)
	getFundByIDFn func(ctx context.Context, id string) (*models.Fund, error)
	createFundFn  func(ctx context.Context, input services.FundInput) (*models.Fund, error)
	updateFundFn  func(ctx context.Context, id string, input services.FundInput) (*models.Fund, error)
}

func (m *mockFundService) GetAllFunds(ctx context.Context) ([]models.Fund, error) {
	if m.getAllFundsFn != nil {
		return m.getAllFundsFn(ctx)
	}
	return []models.Fund{}, nil
}

func (m *mockFundService) GetFundByID(ctx context.Context, id string) (*models.Fund, error) {
	if m.getFundByIDFn != nil {
		return m.getFundByIDFn(ctx, id)
	}
	return &models.Fund{}, nil
}

func (m *mockFundService) CreateFund(ctx context.Context, input services.FundInput) (*models.Fund, error) {
	if m.createFundFn != nil {
		return m.createFundFn(ctx, input)
	}
	return &models.Fund{}, nil
}

func (m *mockFundService) UpdateFund(ctx context.Context, id string, input services.FundInput) (*models.Fund, error) {
	if m.updateFundFn != nil {
		return m.updateFundFn(ctx, id, input)
	}
	return &models.Fund{}, nil
}

var _ services.FundServicer = (*mockFundService)(nil)

type mockInvestorService struct {
	getAllInvestorsFn func(ctx context.Context) ([]models.Investor, error)
	getInvestorByIDFn func(ctx context.Context, id string) (*models.Investor, error)
	createInvestorFn  func(ctx context.Context, input services.InvestorInput) (*models.Investor, error)
}

func (m *mockInvestorService) GetAllInvestors(ctx context.Context) ([]models.Investor, error) {
	if m.getAllInvestorsFn != nil {
		return m.getAllInvestorsFn(ctx)
	}
	return []models.Investor{}, nil
}

func (m *mockInvestorService) GetInvestorByID(ctx context.Context, id string) (*models.Investor, error) {
	if m.getInvestorByIDFn != nil {
		return m.getInvestorByIDFn(ctx, id)
	}
	return &models.Investor{}, nil
}

func (m *mockInvestorService) CreateInvestor(ctx context.Context, input services.InvestorInput) (*models.Investor, error) {
	if m.createInvestorFn != nil {
		return m.createInvestorFn(ctx, input)
	}
	return &models.Investor{}, nil
}

var _ services.InvestorServicer = (*mockInvestorService)(nil)

type mockInvestmentService struct {
	getInvestmentsByFundIDFn func(ctx context.Context, fundID string) ([]models.Investment, error)
	getInvestmentByIDFn      func(ctx context.Context, id string) (*models.Investment, error)
	createInvestmentFn       func(ctx context.Context, input services.InvestmentInput) (*models.Investment, error)
}

func (m *mockInvestmentService) GetInvestmentsByFundID(ctx context.Context, fundID string) ([]models.Investment, error) {
	if m.getInvestmentsByFundIDFn != nil {
		return m.getInvestmentsByFundIDFn(ctx, fundID)
	}
	return []models.Investment{}, nil
}

func (m *mockInvestmentService) GetInvestmentByID(ctx context.Context, id string) (*models.Investment, error) {
	if m.getInvestmentByIDFn != nil {
		return m.getInvestmentByIDFn(ctx, id)
	}
	return &models.Investment{}, nil
}

func (m *mockInvestmentService) CreateInvestment(ctx context.Context, input services.InvestmentInput) (*models.Investment, error) {
	if m.createInvestmentFn != nil {
		return m.createInvestmentFn(ctx, input)
	}
	return &models.Investment{}, nil
}

var _ services.InvestmentServicer = (*mockInvestmentService)(nil)

type mockAnalyticsService struct {
	getFundAnalyticsFn func(ctx context.Context, fundID string) (*analytics.FundAnalytics, error)
}

func (m *mockAnalyticsService) GetFundAnalytics(ctx context.Context, fundID string) (*analytics.FundAnalytics, error) {
	if m.getFundAnalyticsFn != nil {
		return m.getFundAnalyticsFn(ctx, fundID)
	}
	return &analytics.FundAnalytics{}, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

type mockAuditService struct {
	entries []services.AuditEntry
}

func (m *mockAuditService) Log(_ context.Context, entry services.AuditEntry) {
	m.entries = append(m.entries, entry)
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["code"] != code {
		t.Errorf("expected error code %q, got %v (body: %v)", code, result["code"], result)
	}
	if _, ok := result["message"].(string); !ok {
		t.Errorf("expected message in error body, got %v", result)
	}
}

const (
	testFundID     = "0190a6f2-7c1e-7b3a-9f4e-2d6c8a1b3e5f"
	testInvestorID = "0190a6f2-7c1e-7b3a-9f4e-2d6c8a1b3e60"
)
