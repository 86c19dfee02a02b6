package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// MonthlyReportParams holds the query parameters of the monthly report.
type MonthlyReportParams struct {
	Year     string `form:"year"`
	ZeroFill bool   `form:"zero_fill"`
}

// CategoryReportParams holds the query parameters of the category report.
type CategoryReportParams struct {
	Period string `form:"period"`
}

// MonthlySummaryResponse is one month of the monthly report.
type MonthlySummaryResponse struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Savings float64 `json:"savings"`
}

// CategoryBreakdownResponse is one category of the category report.
type CategoryBreakdownResponse struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// BalanceSummaryResponse holds all-time ledger totals.
type BalanceSummaryResponse struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

// ToMonthlySummaryResponse converts monthly report rows to response DTOs
func ToMonthlySummaryResponse(rows []domain.MonthlySummary) []MonthlySummaryResponse {
	res := make([]MonthlySummaryResponse, len(rows))
	for i, m := range rows {
		res[i] = MonthlySummaryResponse{
			Month:   m.MonthLabel(),
			Income:  toNumber(m.Income),
			Expense: toNumber(m.Expense),
			Savings: toNumber(m.Savings),
		}
	}
	return res
}

// ToCategoryBreakdownResponse converts category report rows to response DTOs
func ToCategoryBreakdownResponse(rows []domain.CategoryBreakdown) []CategoryBreakdownResponse {
	res := make([]CategoryBreakdownResponse, len(rows))
	for i, c := range rows {
		res[i] = CategoryBreakdownResponse{
			Category:   c.Category,
			Amount:     toNumber(c.Amount),
			Percentage: toNumber(c.Percentage),
		}
	}
	return res
}

// ToBalanceSummaryResponse converts a BalanceSummary to its response DTO
func ToBalanceSummaryResponse(s domain.BalanceSummary) BalanceSummaryResponse {
	return BalanceSummaryResponse{
		TotalIncome:  toNumber(s.TotalIncome),
		TotalExpense: toNumber(s.TotalExpense),
		Balance:      toNumber(s.Balance),
	}
}
