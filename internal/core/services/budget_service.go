package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// budgetService implements portssvc.BudgetSvcFacade
type budgetService struct {
	BaseService
	budgetRepo    portsrepo.BudgetRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
}

// NewBudgetService creates a new budget service. The reporting repository supplies live category spending.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, reportingRepo portsrepo.ReportingRepository) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:    budgetRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// ListBudgets returns budgets with their persisted spent figure.
func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		budgets = []domain.Budget{}
	}
	return budgets, nil
}

// ListBudgetUsage returns budgets with spent computed from the ledger at read time.
func (s *budgetService) ListBudgetUsage(ctx context.Context) ([]domain.BudgetUsage, error) {
	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.reportingRepo.GetExpenseTotalsByCategory(ctx, domain.DateRange{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load category spending for budget usage")
		return nil, fmt.Errorf("failed to load category spending: %w", err)
	}

	spent := make(map[string]decimal.Decimal, len(totals))
	for _, t := range totals {
		spent[t.Category] = t.Amount
	}
	return accounting.BuildBudgetUsage(budgets, spent), nil
}

// CreateBudget validates and persists a new budget with zero spent.
func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	amount, err := validation.Positive("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	budget := domain.Budget{
		Category:    req.Category,
		Name:        req.Name,
		Amount:      amount,
		Spent:       decimal.Zero,
		AuditFields: domain.AuditFields{CreatedAt: s.Now()},
	}
	id, err := s.budgetRepo.SaveBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("category", req.Category))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	budget.ID = id

	s.LogInfo(ctx, "Budget created", slog.Int64("budget_id", id), slog.String("category", budget.Category))
	return &budget, nil
}

// UpdateBudget replaces category, name and limit of a budget.
func (s *budgetService) UpdateBudget(ctx context.Context, id int64, req dto.UpdateBudgetRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	amount, err := validation.Positive("amount", req.Amount)
	if err != nil {
		return err
	}

	err = s.budgetRepo.UpdateBudget(ctx, domain.Budget{ID: id, Category: req.Category, Name: req.Name, Amount: amount})
	if err != nil {
		return s.wrapWriteError(ctx, err, "update budget", id)
	}
	s.LogInfo(ctx, "Budget updated", slog.Int64("budget_id", id))
	return nil
}

// DeleteBudget removes a budget.
func (s *budgetService) DeleteBudget(ctx context.Context, id int64) error {
	if err := s.budgetRepo.DeleteBudget(ctx, id); err != nil {
		return s.wrapWriteError(ctx, err, "delete budget", id)
	}
	s.LogInfo(ctx, "Budget deleted", slog.Int64("budget_id", id))
	return nil
}

// UpdateBudgetSpent stores a spent figure computed by the caller.
func (s *budgetService) UpdateBudgetSpent(ctx context.Context, id int64, req dto.UpdateBudgetSpentRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	spent, err := validation.NonNegative("spent", req.Spent)
	if err != nil {
		return err
	}

	if err := s.budgetRepo.UpdateBudgetSpent(ctx, id, spent); err != nil {
		return s.wrapWriteError(ctx, err, "update budget spent", id)
	}
	s.LogDebug(ctx, "Budget spent updated", slog.Int64("budget_id", id), slog.String("spent", spent.String()))
	return nil
}

// RecomputeSpent rewrites every budget's spent from the ledger.
func (s *budgetService) RecomputeSpent(ctx context.Context) (int64, error) {
	updated, err := s.budgetRepo.RecomputeSpent(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to recompute budget spending")
		return 0, fmt.Errorf("failed to recompute budget spending: %w", err)
	}
	s.LogInfo(ctx, "Budget spending recomputed", slog.Int64("budgets_updated", updated))
	return updated, nil
}

func (s *budgetService) wrapWriteError(ctx context.Context, err error, action string, id int64) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	s.LogError(ctx, err, "Failed to "+action, slog.Int64("budget_id", id))
	return fmt.Errorf("failed to %s %d: %w", action, id, err)
}
