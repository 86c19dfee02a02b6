package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// RegisterBudgetRoutes registers the budget routes on rg.
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.GET("/usage", h.listBudgetUsage)
		budgets.POST("", h.createBudget)
		budgets.POST("/recompute", h.recomputeSpent)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
		budgets.PUT("/:id/spent", h.updateBudgetSpent)
	}
}

// listBudgets godoc
// @Summary List budgets
// @Description Returns budgets ordered by category with their stored spent value.
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.BudgetResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	budgets, err := h.budgetService.ListBudgets(c.Request.Context())
	if err != nil {
		respondError(c, err, "listing budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

// listBudgetUsage godoc
// @Summary List budget usage
// @Description Returns every budget with spent computed live from the ledger.
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.BudgetUsageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budgets/usage [get]
func (h *budgetHandler) listBudgetUsage(c *gin.Context) {
	usage, err := h.budgetService.ListBudgetUsage(c.Request.Context())
	if err != nil {
		respondError(c, err, "listing budget usage")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetUsageResponse(usage))
}

// createBudget godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetRequest
	if !bindJSON(c, &req, "creating budget") {
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "creating budget")
		return
	}

	logger.Info("Budget created successfully", slog.Int64("budget_id", budget.ID))
	c.JSON(http.StatusCreated, dto.IDResponse{ID: budget.ID})
}

// recomputeSpent godoc
// @Summary Recompute budget spending
// @Description Rewrites every budget's spent from the expense transactions of its category.
// @Tags budgets
// @Produce json
// @Success 200 {object} dto.RecomputeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budgets/recompute [post]
func (h *budgetHandler) recomputeSpent(c *gin.Context) {
	updated, err := h.budgetService.RecomputeSpent(c.Request.Context())
	if err != nil {
		respondError(c, err, "recomputing budget spent")
		return
	}
	c.JSON(http.StatusOK, dto.RecomputeResponse{Success: true, Updated: updated, Message: "Budget spending recomputed successfully"})
}

// updateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path int true "Budget ID"
// @Param budget body dto.UpdateBudgetRequest true "Budget details"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	id, ok := pathID(c, "updating budget")
	if !ok {
		return
	}
	var req dto.UpdateBudgetRequest
	if !bindJSON(c, &req, "updating budget") {
		return
	}

	if err := h.budgetService.UpdateBudget(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "updating budget")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "Budget updated successfully"})
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	id, ok := pathID(c, "deleting budget")
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), id); err != nil {
		respondError(c, err, "deleting budget")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted successfully"})
}

// updateBudgetSpent godoc
// @Summary Write back a budget's spent value
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path int true "Budget ID"
// @Param spent body dto.UpdateBudgetSpentRequest true "Spent amount"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budgets/{id}/spent [put]
func (h *budgetHandler) updateBudgetSpent(c *gin.Context) {
	id, ok := pathID(c, "updating budget spent")
	if !ok {
		return
	}
	var req dto.UpdateBudgetSpentRequest
	if !bindJSON(c, &req, "updating budget spent") {
		return
	}

	if err := h.budgetService.UpdateBudgetSpent(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "updating budget spent")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "Budget spent updated successfully"})
}
