package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"privatemarkets/internal/models"
	"privatemarkets/internal/services"
)

// InvestorHandler handles investor-related requests.
type InvestorHandler struct {
	investorService services.InvestorServicer
	auditService    services.AuditServicer
}

// NewInvestorHandler creates a new InvestorHandler.
func NewInvestorHandler(investorService services.InvestorServicer, auditService services.AuditServicer) *InvestorHandler {
	return &InvestorHandler{investorService: investorService, auditService: auditService}
}

// CreateInvestorRequest represents the request payload for creating an investor.
type CreateInvestorRequest struct {
	Name         string `json:"name" binding:"required"`
	InvestorType string `json:"investor_type" binding:"required,investor_type"`
	Email        string `json:"email" binding:"required"`
}

// GetAllInvestors lists every investor.
// @Summary     List investors
// @Description List all investors, newest first
// @Tags        investors
// @Produce     json
// @Success     200 {array}  models.Investor
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors [get]
func (h *InvestorHandler) GetAllInvestors(c *gin.Context) {
	investors, err := h.investorService.GetAllInvestors(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, investors)
}

// GetInvestorByID returns a single investor.
// @Summary     Get investor
// @Description Get an investor by ID
// @Tags        investors
// @Produce     json
// @Param       investor_id path     string true "Investor ID (UUID)"
// @Success     200         {object} models.Investor
// @Failure     400         {object} ErrorResponse "Invalid ID"
// @Failure     404         {object} ErrorResponse "Investor not found"
// @Router      /investors/{investor_id} [get]
func (h *InvestorHandler) GetInvestorByID(c *gin.Context) {
	investor, err := h.investorService.GetInvestorByID(c.Request.Context(), c.Param("investor_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, investor)
}

// CreateInvestor creates a new investor.
// @Summary     Create investor
// @Description Create a new investor; emails must be unique
// @Tags        investors
// @Accept      json
// @Produce     json
// @Param       request body     CreateInvestorRequest true "Investor details"
// @Success     201     {object} models.Investor
// @Failure     400     {object} ErrorResponse "Validation failed"
// @Failure     409     {object} ErrorResponse "Email already registered"
// @Router      /investors [post]
func (h *InvestorHandler) CreateInvestor(c *gin.Context) {
	var req CreateInvestorRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	investor, err := h.investorService.CreateInvestor(c.Request.Context(), services.InvestorInput{
		Name:         req.Name,
		InvestorType: models.InvestorType(req.InvestorType),
		Email:        req.Email,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordAudit(c, h.auditService, services.AuditActionCreate, services.AuditResourceInvestor, investor.ID, map[string]interface{}{
		"name":          investor.Name,
		"investor_type": investor.InvestorType,
		"email":         investor.Email,
	})
	c.JSON(http.StatusCreated, investor)
}
