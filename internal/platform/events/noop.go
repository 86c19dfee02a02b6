package events

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/ports"
)

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

var _ ports.LedgerEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishLedgerEvent(context.Context, domain.LedgerEvent) error {
	return nil
}
