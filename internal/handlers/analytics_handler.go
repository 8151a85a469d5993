package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"privatemarkets/internal/services"
)

// AnalyticsHandler serves derived fund statistics.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetFundAnalytics returns utilization, concentration and fee allocation for a fund.
// @Summary     Fund analytics
// @Description Capital raised against target, top investors, breakdown by investor type and management fee allocation
// @Tags        analytics
// @Produce     json
// @Param       fund_id path     string true "Fund ID (UUID)"
// @Success     200     {object} analytics.FundAnalytics
// @Failure     400     {object} ErrorResponse "Invalid ID"
// @Failure     404     {object} ErrorResponse "Fund not found"
// @Router      /funds/{fund_id}/analytics [get]
func (h *AnalyticsHandler) GetFundAnalytics(c *gin.Context) {
	result, err := h.analyticsService.GetFundAnalytics(c.Request.Context(), c.Param("fund_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
