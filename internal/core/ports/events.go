package ports

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// LedgerEventPublisher announces ledger mutations to interested consumers.
type LedgerEventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error
}
