package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetReader defines read operations for budgets
type BudgetReader interface {
	// ListBudgets returns budgets ordered by category asc, id asc.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budgets
type BudgetWriter interface {
	SaveBudget(ctx context.Context, budget domain.Budget) (int64, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, id int64) error
	UpdateBudgetSpent(ctx context.Context, id int64, spent decimal.Decimal) error

	// RecomputeSpent rewrites every budget's spent from the ledger and returns the number of budgets updated.
	RecomputeSpent(ctx context.Context) (int64, error)
}

// BudgetRepositoryFacade combines all budget repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
