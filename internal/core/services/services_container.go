package services

import (
	"github.com/SscSPs/finance_tracker/internal/core/ports"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher may be nil, in which case ledger events are not emitted.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher ports.LedgerEventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	txnOptions := []TransactionServiceOption{}
	if publisher != nil {
		txnOptions = append(txnOptions, WithLedgerEventPublisher(publisher))
	}
	container.Transaction = NewTransactionService(repos.TransactionRepo, txnOptions...)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.ReportingRepo)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, WithStrictPeriods(cfg.ReportsStrictPeriods))
	container.Health = repos.Health

	return container
}
