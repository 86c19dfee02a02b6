package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MonthlyTotals is the raw per-month aggregate produced by the store.
type MonthlyTotals struct {
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
	Count   int64
}

// MonthlySummary is one row of the monthly report.
type MonthlySummary struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

// MonthLabel renders the month as a two-digit string ("01".."12").
func (m MonthlySummary) MonthLabel() string {
	return fmt.Sprintf("%02d", m.Month)
}

// CategoryTotal is the raw expense sum for one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryBreakdown is one row of the category report.
type CategoryBreakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// BalanceSummary holds all-time ledger totals.
type BalanceSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}
