package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// BudgetReaderSvc defines read operations on budgets
type BudgetReaderSvc interface {
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
	ListBudgetUsage(ctx context.Context) ([]domain.BudgetUsage, error)
}

// BudgetWriterSvc defines write operations on budgets
type BudgetWriterSvc interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, id int64, req dto.UpdateBudgetRequest) error
	DeleteBudget(ctx context.Context, id int64) error
	UpdateBudgetSpent(ctx context.Context, id int64, req dto.UpdateBudgetSpentRequest) error

	// RecomputeSpent refreshes every budget's spent from the ledger.
	RecomputeSpent(ctx context.Context) (int64, error)
}

// BudgetSvcFacade combines all budget service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
