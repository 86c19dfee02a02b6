// Package events carries ledger change notifications over RabbitMQ.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// EncodeLedgerEvent converts the event to its JSON wire form.
func EncodeLedgerEvent(event domain.LedgerEvent) ([]byte, error) {
	return json.Marshal(event)
}

// DecodeLedgerEvent parses a message body, rejecting unknown kinds.
func DecodeLedgerEvent(data []byte) (domain.LedgerEvent, error) {
	var event domain.LedgerEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return domain.LedgerEvent{}, err
	}
	switch event.Kind {
	case domain.LedgerEventCreated, domain.LedgerEventUpdated, domain.LedgerEventDeleted:
		return event, nil
	default:
		return domain.LedgerEvent{}, fmt.Errorf("unknown ledger event kind %q", event.Kind)
	}
}
