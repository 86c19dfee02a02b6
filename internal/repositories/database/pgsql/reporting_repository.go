package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// dateFilter renders the WHERE clause for r, numbering placeholders from 1.
func dateFilter(r domain.DateRange) (string, []any) {
	if r.IsUnbounded() {
		return "", nil
	}
	return " WHERE txn_date >= $1 AND txn_date < $2", []any{r.From.UTC(), r.To.UTC()}
}

// GetMonthlyTotals sums income and expense per UTC calendar month
func (r *reportingRepository) GetMonthlyTotals(ctx context.Context, dr domain.DateRange) ([]domain.MonthlyTotals, error) {
	where, args := dateFilter(dr)
	query := `
		SELECT
			EXTRACT(MONTH FROM txn_date AT TIME ZONE 'UTC')::int AS month,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expense,
			COUNT(*) AS txn_count
		FROM transactions` + where + `
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly totals: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlyTotals{}
	for rows.Next() {
		var row domain.MonthlyTotals
		if err := rows.Scan(&row.Month, &row.Income, &row.Expense, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning monthly totals row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly totals rows: %w", err)
	}

	return result, nil
}

// GetExpenseTotalsByCategory sums expense amounts per category
func (r *reportingRepository) GetExpenseTotalsByCategory(ctx context.Context, dr domain.DateRange) ([]domain.CategoryTotal, error) {
	where, args := dateFilter(dr)
	if where == "" {
		where = " WHERE type = 'expense'"
	} else {
		where += " AND type = 'expense'"
	}
	query := `
		SELECT category, SUM(amount) AS total
		FROM transactions` + where + `
		GROUP BY category
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var row domain.CategoryTotal
		if err := rows.Scan(&row.Category, &row.Amount); err != nil {
			return nil, fmt.Errorf("error scanning category totals row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals rows: %w", err)
	}

	return result, nil
}

// GetLedgerTotals sums all income and all expense amounts
func (r *reportingRepository) GetLedgerTotals(ctx context.Context, dr domain.DateRange) (decimal.Decimal, decimal.Decimal, error) {
	where, args := dateFilter(dr)
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0)
		FROM transactions` + where

	var income, expense decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying ledger totals: %w", err)
	}
	return income, expense, nil
}
