package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

// RegisterGoalRoutes registers the goal routes on rg.
func RegisterGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.POST("", h.createGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
		goals.POST("/:id/contribute", h.contribute)
		goals.GET("/:id/contributions", h.listContributions)
	}
}

// listGoals godoc
// @Summary List goals
// @Description Returns goals ordered by deadline, undated goals last.
// @Tags goals
// @Produce json
// @Success 200 {array} dto.GoalResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		respondError(c, err, "listing goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}

// createGoal godoc
// @Summary Create a goal
// @Description A positive current amount is recorded as the goal's opening contribution.
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if !bindJSON(c, &req, "creating goal") {
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "creating goal")
		return
	}

	logger.Info("Goal created successfully", slog.Int64("goal_id", goal.ID))
	c.JSON(http.StatusCreated, dto.IDResponse{ID: goal.ID})
}

// updateGoal godoc
// @Summary Update a goal
// @Description Replaces name and target. current may only grow; the increase is recorded as a contribution. deadline and description are changed only when present, null or "" clears them.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param goal body dto.UpdateGoalRequest true "Goal details"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goals/{id} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	id, ok := pathID(c, "updating goal")
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if !bindJSON(c, &req, "updating goal") {
		return
	}

	if err := h.goalService.UpdateGoal(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "updating goal")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "Goal updated successfully"})
}

// deleteGoal godoc
// @Summary Delete a goal
// @Description Deletes the goal together with its contributions.
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	id, ok := pathID(c, "deleting goal")
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), id); err != nil {
		respondError(c, err, "deleting goal")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal deleted successfully"})
}

// contribute godoc
// @Summary Contribute to a goal
// @Description Records a contribution and raises the goal's current amount in one transaction.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param contribution body dto.ContributeRequest true "Contribution amount"
// @Success 200 {object} dto.ContributeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goals/{id}/contribute [post]
func (h *goalHandler) contribute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := pathID(c, "contributing to goal")
	if !ok {
		return
	}
	var req dto.ContributeRequest
	if !bindJSON(c, &req, "contributing to goal") {
		return
	}

	contribution, err := h.goalService.Contribute(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "contributing to goal")
		return
	}

	logger.Info("Contribution recorded successfully",
		slog.Int64("goal_id", id),
		slog.Int64("contribution_id", contribution.ID))
	c.JSON(http.StatusOK, dto.ContributeResponse{
		Success:        true,
		Message:        "Contribution added successfully",
		ContributionID: contribution.ID,
	})
}

// listContributions godoc
// @Summary List a goal's contributions
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {array} dto.ContributionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goals/{id}/contributions [get]
func (h *goalHandler) listContributions(c *gin.Context) {
	id, ok := pathID(c, "listing contributions")
	if !ok {
		return
	}

	contributions, err := h.goalService.ListContributions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "listing contributions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContributionResponse(contributions))
}
