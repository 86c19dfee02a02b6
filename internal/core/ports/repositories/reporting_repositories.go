package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the aggregate queries behind the reports.
// All ranges are half-open [From, To); a zero range means all-time.
type ReportingRepository interface {
	// GetMonthlyTotals returns income, expense and row count per calendar month (UTC).
	GetMonthlyTotals(ctx context.Context, r domain.DateRange) ([]domain.MonthlyTotals, error)

	// GetExpenseTotalsByCategory returns the sum of expense amounts per category.
	GetExpenseTotalsByCategory(ctx context.Context, r domain.DateRange) ([]domain.CategoryTotal, error)

	// GetLedgerTotals returns total income and total expense.
	GetLedgerTotals(ctx context.Context, r domain.DateRange) (income decimal.Decimal, expense decimal.Decimal, err error)
}
