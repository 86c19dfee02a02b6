package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	Category string            `json:"category" binding:"required,max=100"`
	Name     string            `json:"name" binding:"required,max=200"`
	Amount   validation.Number `json:"amount" binding:"required"`
}

// UpdateBudgetRequest replaces a budget's category, name and limit.
type UpdateBudgetRequest struct {
	Category string            `json:"category" binding:"required,max=100"`
	Name     string            `json:"name" binding:"required,max=200"`
	Amount   validation.Number `json:"amount" binding:"required"`
}

// UpdateBudgetSpentRequest writes back a client-computed spent figure.
type UpdateBudgetSpentRequest struct {
	Spent validation.Number `json:"spent" binding:"required"`
}

// RecomputeResponse reports how many budgets a recompute touched.
type RecomputeResponse struct {
	Success bool   `json:"success"`
	Updated int64  `json:"updated"`
	Message string `json:"message"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	ID        int64   `json:"id"`
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Spent     float64 `json:"spent"`
	CreatedAt string  `json:"created_at"`
}

// BudgetUsageResponse is a budget with spending computed from the ledger.
type BudgetUsageResponse struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percent_used"`
	CreatedAt   string  `json:"created_at"`
}

// ToBudgetResponse converts a domain Budget to its response DTO
func ToBudgetResponse(b domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID,
		Category:  b.Category,
		Name:      b.Name,
		Amount:    toNumber(b.Amount),
		Spent:     toNumber(b.Spent),
		CreatedAt: formatTimestamp(b.CreatedAt),
	}
}

// ToListBudgetResponse converts domain Budgets to response DTOs
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(b)
	}
	return res
}

// ToListBudgetUsageResponse converts domain BudgetUsage rows to response DTOs
func ToListBudgetUsageResponse(usage []domain.BudgetUsage) []BudgetUsageResponse {
	res := make([]BudgetUsageResponse, len(usage))
	for i, u := range usage {
		res[i] = BudgetUsageResponse{
			ID:          u.ID,
			Category:    u.Category,
			Name:        u.Name,
			Amount:      toNumber(u.Amount),
			Spent:       toNumber(u.LiveSpent),
			Remaining:   toNumber(u.Remaining),
			PercentUsed: toNumber(u.PercentUsed),
			CreatedAt:   formatTimestamp(u.CreatedAt),
		}
	}
	return res
}
