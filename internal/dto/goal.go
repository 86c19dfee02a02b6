package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name        string            `json:"name" binding:"required,max=200"`
	Target      validation.Number `json:"target" binding:"required"`
	Current     validation.Number `json:"current"`
	Deadline    *string           `json:"deadline"`
	Description *string           `json:"description"`
}

// UpdateGoalRequest replaces name and target; the remaining fields change only when present.
type UpdateGoalRequest struct {
	Name        string                    `json:"name" binding:"required,max=200"`
	Target      validation.Number         `json:"target" binding:"required"`
	Current     validation.Number         `json:"current"`
	Deadline    validation.OptionalString `json:"deadline"`
	Description validation.OptionalString `json:"description"`
}

// ContributeRequest adds money to a goal.
type ContributeRequest struct {
	Amount validation.Number `json:"amount" binding:"required"`
}

// ContributeResponse is returned after a successful contribution.
type ContributeResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ContributionID int64  `json:"contribution_id"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Target      float64 `json:"target"`
	Current     float64 `json:"current"`
	Deadline    *string `json:"deadline"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// ContributionResponse defines the data returned for a goal contribution.
type ContributionResponse struct {
	ID     int64   `json:"id"`
	GoalID int64   `json:"goal_id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// ToGoalResponse converts a domain Goal to its response DTO
func ToGoalResponse(g domain.Goal) GoalResponse {
	res := GoalResponse{
		ID:          g.ID,
		Name:        g.Name,
		Target:      toNumber(g.Target),
		Current:     toNumber(g.Current),
		Description: g.Description,
		CreatedAt:   formatTimestamp(g.CreatedAt),
	}
	if g.Deadline != nil {
		deadline := g.Deadline.UTC().Format(time.DateOnly)
		res.Deadline = &deadline
	}
	return res
}

// ToListGoalResponse converts domain Goals to response DTOs
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i, g := range goals {
		res[i] = ToGoalResponse(g)
	}
	return res
}

// ToListContributionResponse converts domain Contributions to response DTOs
func ToListContributionResponse(contributions []domain.Contribution) []ContributionResponse {
	res := make([]ContributionResponse, len(contributions))
	for i, c := range contributions {
		res[i] = ContributionResponse{
			ID:     c.ID,
			GoalID: c.GoalID,
			Amount: toNumber(c.Amount),
			Date:   formatTimestamp(c.Date),
		}
	}
	return res
}
