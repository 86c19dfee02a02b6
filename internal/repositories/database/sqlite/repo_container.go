package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on top of db.
// db must have foreign keys enabled and a single open connection, see database.NewSQLiteDB.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newSQLiteTransactionRepository(db),
		BudgetRepo:      newSQLiteBudgetRepository(db),
		GoalRepo:        newSQLiteGoalRepository(db),
		ReportingRepo:   newReportingRepository(db),
		Health:          &BaseRepository{DB: db},
	}
}
