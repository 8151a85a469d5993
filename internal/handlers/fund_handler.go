package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"privatemarkets/internal/models"
	"privatemarkets/internal/services"
)

// FundHandler handles fund-related requests.
type FundHandler struct {
	fundService  services.FundServicer
	auditService services.AuditServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService services.FundServicer, auditService services.AuditServicer) *FundHandler {
	return &FundHandler{fundService: fundService, auditService: auditService}
}

// CreateFundRequest represents the request payload for creating a fund.
type CreateFundRequest struct {
	Name          string   `json:"name" binding:"required"`
	VintageYear   int      `json:"vintage_year" binding:"required,min=1900,max=2100"`
	TargetSizeUSD *float64 `json:"target_size_usd" binding:"required,gte=0"`
	Status        string   `json:"status" binding:"required,fund_status"`
}

func (r CreateFundRequest) input() services.FundInput {
	return services.FundInput{
		Name:          r.Name,
		VintageYear:   r.VintageYear,
		TargetSizeUSD: *r.TargetSizeUSD,
		Status:        models.FundStatus(r.Status),
	}
}

// UpdateFundRequest represents the request payload for replacing a fund.
type UpdateFundRequest struct {
	ID string `json:"id" binding:"required"`
	CreateFundRequest
}

// GetAllFunds lists every fund.
// @Summary     List funds
// @Description List all funds, newest first
// @Tags        funds
// @Produce     json
// @Success     200 {array}  models.Fund
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds [get]
func (h *FundHandler) GetAllFunds(c *gin.Context) {
	funds, err := h.fundService.GetAllFunds(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, funds)
}

// GetFundByID returns a single fund.
// @Summary     Get fund
// @Description Get a fund by its ID
// @Tags        funds
// @Produce     json
// @Param       fund_id path     string true "Fund ID (UUID)"
// @Success     200     {object} models.Fund
// @Failure     400     {object} ErrorResponse "Invalid ID"
// @Failure     404     {object} ErrorResponse "Fund not found"
// @Router      /funds/{fund_id} [get]
func (h *FundHandler) GetFundByID(c *gin.Context) {
	fund, err := h.fundService.GetFundByID(c.Request.Context(), c.Param("fund_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, fund)
}

// CreateFund creates a new fund.
// @Summary     Create fund
// @Description Create a new fund
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       request body     CreateFundRequest true "Fund details"
// @Success     201     {object} models.Fund
// @Failure     400     {object} ErrorResponse "Validation failed"
// @Router      /funds [post]
func (h *FundHandler) CreateFund(c *gin.Context) {
	var req CreateFundRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.CreateFund(c.Request.Context(), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordAudit(c, h.auditService, services.AuditActionCreate, services.AuditResourceFund, fund.ID, fundChanges(fund))
	c.JSON(http.StatusCreated, fund)
}

// UpdateFund replaces an existing fund.
// @Summary     Update fund
// @Description Replace every field of an existing fund; the ID is taken from the body
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       request body     UpdateFundRequest true "Fund details"
// @Success     200     {object} models.Fund
// @Failure     400     {object} ErrorResponse "Validation failed"
// @Failure     404     {object} ErrorResponse "Fund not found"
// @Router      /funds [put]
func (h *FundHandler) UpdateFund(c *gin.Context) {
	var req UpdateFundRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.UpdateFund(c.Request.Context(), req.ID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordAudit(c, h.auditService, services.AuditActionUpdate, services.AuditResourceFund, fund.ID, fundChanges(fund))
	c.JSON(http.StatusOK, fund)
}

func fundChanges(fund *models.Fund) map[string]interface{} {
	return map[string]interface{}{
		"name":            fund.Name,
		"vintage_year":    fund.VintageYear,
		"target_size_usd": fund.TargetSizeUSD,
		"status":          fund.Status,
	}
}
