package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

var errBudgetNotFound = apperrors.NewNotFoundError("Budget not found")

// ListBudgets retrieves all budgets ordered by category.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	query := `
		SELECT id, category, name, amount, spent, created_at
		FROM budgets
		ORDER BY category ASC, id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	modelBudgets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Budget, error) {
		var b models.Budget
		err := row.Scan(&b.ID, &b.Category, &b.Name, &b.Amount, &b.Spent, &b.CreatedAt)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budgets: %w", err)
	}

	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}

// SaveBudget inserts a budget. Spent starts at the value carried by budget, normally zero.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (int64, error) {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (category, name, amount, spent, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, m.Category, m.Name, m.Amount, m.Spent, m.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert budget: %w", err)
	}
	return id, nil
}

// UpdateBudget replaces category, name and amount.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	query := `UPDATE budgets SET category = $1, name = $2, amount = $3 WHERE id = $4;`
	tag, err := r.Pool.Exec(ctx, query, budget.Category, budget.Name, budget.Amount, budget.ID)
	if err != nil {
		return fmt.Errorf("failed to update budget %d: %w", budget.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return errBudgetNotFound
	}
	return nil
}

// DeleteBudget removes a budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return errBudgetNotFound
	}
	return nil
}

// UpdateBudgetSpent overwrites the persisted spent value.
func (r *PgxBudgetRepository) UpdateBudgetSpent(ctx context.Context, id int64, spent decimal.Decimal) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE budgets SET spent = $1 WHERE id = $2;`, spent, id)
	if err != nil {
		return fmt.Errorf("failed to update spent of budget %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return errBudgetNotFound
	}
	return nil
}

// RecomputeSpent sets every budget's spent to the all-time expense total of its category.
func (r *PgxBudgetRepository) RecomputeSpent(ctx context.Context) (int64, error) {
	query := `
		UPDATE budgets b SET spent = (
			SELECT COALESCE(SUM(t.amount), 0)
			FROM transactions t
			WHERE t.type = 'expense' AND t.category = b.category
		);
	`
	tag, err := r.Pool.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to recompute budget spent: %w", err)
	}
	return tag.RowsAffected(), nil
}
