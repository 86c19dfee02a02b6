package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *sql.DB) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// dateFilter renders the WHERE clause for r. Stored timestamps compare as text.
func dateFilter(r domain.DateRange) (string, []any) {
	if r.IsUnbounded() {
		return "", nil
	}
	return " WHERE txn_date >= ? AND txn_date < ?", []any{formatTimestamp(r.From), formatTimestamp(r.To)}
}

// GetMonthlyTotals sums income and expense per UTC calendar month
func (r *reportingRepository) GetMonthlyTotals(ctx context.Context, dr domain.DateRange) ([]domain.MonthlyTotals, error) {
	where, args := dateFilter(dr)
	query := `
		SELECT
			CAST(substr(txn_date, 6, 2) AS INTEGER) AS month,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount_minor ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount_minor ELSE 0 END), 0) AS expense,
			COUNT(*) AS txn_count
		FROM transactions` + where + `
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly totals: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlyTotals{}
	for rows.Next() {
		var (
			row             domain.MonthlyTotals
			income, expense int64
		)
		if err := rows.Scan(&row.Month, &income, &expense, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning monthly totals row: %w", err)
		}
		row.Income = fromMinor(income)
		row.Expense = fromMinor(expense)
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
		SELECT category, SUM(amount_minor) AS total
		FROM transactions` + where + `
		GROUP BY category
	`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var (
			row   domain.CategoryTotal
			total int64
		)
		if err := rows.Scan(&row.Category, &total); err != nil {
			return nil, fmt.Errorf("error scanning category totals row: %w", err)
		}
		row.Amount = fromMinor(total)
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
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount_minor ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount_minor ELSE 0 END), 0)
		FROM transactions` + where

	var income, expense int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying ledger totals: %w", err)
	}
	return fromMinor(income), fromMinor(expense), nil
}
