package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "privatemarkets/internal/errors"
	"privatemarkets/internal/services"
	"privatemarkets/internal/validation"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService}
}

// CreateInvestmentRequest represents the request payload for recording an
// investment. The fund comes from the path.
type CreateInvestmentRequest struct {
	InvestorID     string   `json:"investor_id" binding:"required"`
	AmountUSD      *float64 `json:"amount_usd" binding:"required,gte=0"`
	InvestmentDate string   `json:"investment_date" binding:"required" example:"2024-03-15"`
}

// GetFundInvestments lists a fund's investments.
// @Summary     List fund investments
// @Description List the investments made into a fund, latest investment date first
// @Tags        investments
// @Produce     json
// @Param       fund_id path     string true "Fund ID (UUID)"
// @Success     200     {array}  models.Investment
// @Failure     400     {object} ErrorResponse "Invalid ID"
// @Router      /funds/{fund_id}/investments [get]
func (h *InvestmentHandler) GetFundInvestments(c *gin.Context) {
	investments, err := h.investmentService.GetInvestmentsByFundID(c.Request.Context(), c.Param("fund_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, investments)
}

// GetInvestment returns one of a fund's investments with its investor.
// @Summary     Get investment
// @Description Get an investment of a fund by its ID, with the investor embedded
// @Tags        investments
// @Produce     json
// @Param       fund_id       path     string true "Fund ID (UUID)"
// @Param       investment_id path     string true "Investment ID (UUID)"
// @Success     200           {object} models.Investment
// @Failure     400           {object} ErrorResponse "Invalid ID"
// @Failure     404           {object} ErrorResponse "Investment not found"
// @Router      /funds/{fund_id}/investments/{investment_id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	investment, err := h.investmentService.GetInvestmentByID(c.Request.Context(), c.Param("investment_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	// An investment is only visible under the fund it belongs to.
	if !strings.EqualFold(investment.FundID, c.Param("fund_id")) {
		respondWithError(c, apperrors.ErrInvestmentNotFound)
		return
	}
	c.JSON(http.StatusOK, investment)
}

// CreateInvestment records an investment into a fund.
// @Summary     Create investment
// @Description Record an investor's commitment to a fund
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       fund_id path     string                  true "Fund ID (UUID)"
// @Param       request body     CreateInvestmentRequest true "Investment details"
// @Success     201     {object} models.Investment
// @Failure     400     {object} ErrorResponse "Validation failed or referenced record missing"
// @Router      /funds/{fund_id}/investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req CreateInvestmentRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	date, err := validation.ParseDate(req.InvestmentDate)
	if err != nil {
		respondWithError(c, apperrors.WithErrors(apperrors.ErrValidation, []string{
			"investment_date must be a valid date (YYYY-MM-DD)",
		}))
		return
	}

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), services.InvestmentInput{
		FundID:         c.Param("fund_id"),
		InvestorID:     req.InvestorID,
		AmountUSD:      *req.AmountUSD,
		InvestmentDate: date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordAudit(c, h.auditService, services.AuditActionCreate, services.AuditResourceInvestment, investment.ID, map[string]interface{}{
		"fund_id":         investment.FundID,
		"investor_id":     investment.InvestorID,
		"amount_usd":      investment.AmountUSD,
		"investment_date": investment.InvestmentDate.Format("2006-01-02"),
	})
	c.JSON(http.StatusCreated, investment)
}
