package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/monthly", h.getMonthlySummary)
		reportingGroup.GET("/categories", h.getCategoryBreakdown)
		reportingGroup.GET("/summary", h.getSummary)
	}
}

// getMonthlySummary godoc
// @Summary Monthly income and expense
// @Description Income, expense and savings per month of a year. Months without transactions are omitted unless zero_fill is set.
// @Tags reports
// @Produce json
// @Param year query int false "Four-digit year" default(current year)
// @Param zero_fill query bool false "Return all twelve months"
// @Success 200 {array} dto.MonthlySummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	var params dto.MonthlyReportParams
	if !bindQuery(c, &params, "generating monthly summary") {
		return
	}

	summary, err := h.reportingService.MonthlySummary(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "generating monthly summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary))
}

// getCategoryBreakdown godoc
// @Summary Spending by category
// @Description Each expense category's total and share of all spending. Only the month and year periods narrow the data; other periods cover all time.
// @Tags reports
// @Produce json
// @Param period query string false "week, month, quarter, year, custom or all"
// @Success 200 {array} dto.CategoryBreakdownResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/categories [get]
func (h *reportingHandler) getCategoryBreakdown(c *gin.Context) {
	var params dto.CategoryReportParams
	if !bindQuery(c, &params, "generating category breakdown") {
		return
	}

	breakdown, err := h.reportingService.CategoryBreakdown(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "generating category breakdown")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(breakdown))
}

// getSummary godoc
// @Summary Balance summary
// @Description All-time total income, total expense and balance.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceSummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err, "generating balance summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSummaryResponse(*summary))
}
