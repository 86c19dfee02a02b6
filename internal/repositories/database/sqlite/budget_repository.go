package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type SQLiteBudgetRepository struct {
	BaseRepository
}

func newSQLiteBudgetRepository(db *sql.DB) portsrepo.BudgetRepositoryFacade {
	return &SQLiteBudgetRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*SQLiteBudgetRepository)(nil)

var errBudgetNotFound = apperrors.NewNotFoundError("Budget not found")

// ListBudgets retrieves all budgets ordered by category.
func (r *SQLiteBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	query := `
		SELECT id, category, name, amount_minor, spent_minor, created_at
		FROM budgets
		ORDER BY category ASC, id ASC;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	modelBudgets := []models.Budget{}
	for rows.Next() {
		var (
			b             models.Budget
			amount, spent int64
			createdAt     string
		)
		if err := rows.Scan(&b.ID, &b.Category, &b.Name, &amount, &spent, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		if b.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		b.Amount = fromMinor(amount)
		b.Spent = fromMinor(spent)
		modelBudgets = append(modelBudgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}

	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}

// SaveBudget inserts a budget.
func (r *SQLiteBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (int64, error) {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (category, name, amount_minor, spent_minor, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id;
	`
	var id int64
	err := r.DB.QueryRowContext(ctx, query, m.Category, m.Name, toMinor(m.Amount), toMinor(m.Spent), formatTimestamp(m.CreatedAt)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert budget: %w", err)
	}
	return id, nil
}

// UpdateBudget replaces category, name and amount.
func (r *SQLiteBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE budgets SET category = ?, name = ?, amount_minor = ? WHERE id = ?;`,
		budget.Category, budget.Name, toMinor(budget.Amount), budget.ID)
	if err != nil {
		return fmt.Errorf("failed to update budget %d: %w", budget.ID, err)
	}
	return requireRows(res, errBudgetNotFound)
}

// DeleteBudget removes a budget.
func (r *SQLiteBudgetRepository) DeleteBudget(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", id, err)
	}
	return requireRows(res, errBudgetNotFound)
}

// UpdateBudgetSpent overwrites the persisted spent value.
func (r *SQLiteBudgetRepository) UpdateBudgetSpent(ctx context.Context, id int64, spent decimal.Decimal) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE budgets SET spent_minor = ? WHERE id = ?;`, toMinor(spent), id)
	if err != nil {
		return fmt.Errorf("failed to update spent of budget %d: %w", id, err)
	}
	return requireRows(res, errBudgetNotFound)
}

// RecomputeSpent sets every budget's spent to the all-time expense total of its category.
func (r *SQLiteBudgetRepository) RecomputeSpent(ctx context.Context) (int64, error) {
	query := `
		UPDATE budgets SET spent_minor = (
			SELECT COALESCE(SUM(t.amount_minor), 0)
			FROM transactions t
			WHERE t.type = 'expense' AND t.category = budgets.category
		);
	`
	res, err := r.DB.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to recompute budget spent: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// requireRows returns notFound when res reports no affected rows.
func requireRows(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
