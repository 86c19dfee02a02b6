package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// TransactionReader defines read operations for the ledger
type TransactionReader interface {
	// ListTransactions returns ledger entries ordered by date desc, id desc.
	ListTransactions(ctx context.Context, page domain.LedgerPage) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the ledger
type TransactionWriter interface {
	// SaveTransaction persists a new entry and returns its generated id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error)

	// UpdateTransaction changes description and amount. Returns apperrors.ErrNotFound if no row matched.
	UpdateTransaction(ctx context.Context, id int64, update domain.TransactionUpdate) (*domain.Transaction, error)

	// DeleteTransaction removes an entry and returns it. Returns apperrors.ErrNotFound if no row matched.
	DeleteTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
