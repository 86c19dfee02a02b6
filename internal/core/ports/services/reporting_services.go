package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// ReportingService defines the interface for the aggregate reports
type ReportingService interface {
	// MonthlySummary returns income, expense and savings per month of a year (current year by default).
	MonthlySummary(ctx context.Context, params dto.MonthlyReportParams) ([]domain.MonthlySummary, error)

	// CategoryBreakdown returns each expense category's share of total spending over a period.
	CategoryBreakdown(ctx context.Context, params dto.CategoryReportParams) ([]domain.CategoryBreakdown, error)

	// Summary returns all-time totals and the net balance.
	Summary(ctx context.Context) (*domain.BalanceSummary, error)
}
