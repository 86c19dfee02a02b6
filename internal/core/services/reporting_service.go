package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	strictPeriods bool
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithStrictPeriods rejects period tokens that do not narrow the data instead of falling back to all-time.
func WithStrictPeriods(strict bool) ReportingServiceOption {
	return func(s *reportingService) {
		s.strictPeriods = strict
	}
}

// WithReportingClock overrides the clock that resolves the current year and period.
func WithReportingClock(clock func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.Clock = clock
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// MonthlySummary aggregates income and expense per month of the requested year.
func (s *reportingService) MonthlySummary(ctx context.Context, params dto.MonthlyReportParams) ([]domain.MonthlySummary, error) {
	year := s.Now().Year()
	if params.Year != "" {
		parsed, err := validation.ParseYear("year", params.Year)
		if err != nil {
			return nil, err
		}
		year = parsed
	}

	rows, err := s.reportingRepo.GetMonthlyTotals(ctx, domain.YearRange(year))
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly totals", slog.Int("year", year))
		return nil, fmt.Errorf("failed to retrieve monthly totals: %w", err)
	}

	summary := accounting.BuildMonthlySummary(rows, params.ZeroFill)
	s.LogInfo(ctx, "Monthly summary generated successfully",
		slog.Int("year", year),
		slog.Bool("zero_fill", params.ZeroFill),
		slog.Int("month_count", len(summary)))
	return summary, nil
}

// CategoryBreakdown aggregates expense per category over the requested period.
func (s *reportingService) CategoryBreakdown(ctx context.Context, params dto.CategoryReportParams) ([]domain.CategoryBreakdown, error) {
	dateRange, err := domain.ResolvePeriod(params.Period, s.Now(), s.strictPeriods)
	if err != nil {
		s.LogWarn(ctx, "Rejected unsupported report period", slog.String("period", params.Period))
		return nil, apperrors.NewValidationError("period", fmt.Sprintf("Unsupported period %q: use month, year or all", params.Period))
	}

	rows, err := s.reportingRepo.GetExpenseTotalsByCategory(ctx, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category totals", slog.String("period", params.Period))
		return nil, fmt.Errorf("failed to retrieve category totals: %w", err)
	}

	breakdown := accounting.BuildCategoryBreakdown(rows)
	s.LogInfo(ctx, "Category breakdown generated successfully",
		slog.String("period", params.Period),
		slog.Bool("all_time", dateRange.IsUnbounded()),
		slog.Int("category_count", len(breakdown)))
	return breakdown, nil
}

// Summary returns all-time income, expense and balance.
func (s *reportingService) Summary(ctx context.Context) (*domain.BalanceSummary, error) {
	income, expense, err := s.reportingRepo.GetLedgerTotals(ctx, domain.DateRange{})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve ledger totals")
		return nil, fmt.Errorf("failed to retrieve ledger totals: %w", err)
	}
	summary := accounting.BuildBalanceSummary(income, expense)
	return &summary, nil
}
