package domain

import "time"

// LedgerEventKind names the mutation that produced a LedgerEvent.
type LedgerEventKind string

const (
	LedgerEventCreated LedgerEventKind = "created"
	LedgerEventUpdated LedgerEventKind = "updated"
	LedgerEventDeleted LedgerEventKind = "deleted"
)

// LedgerEvent is emitted after a successful ledger mutation so that derived
// figures such as budget spending can be refreshed.
type LedgerEvent struct {
	Kind          LedgerEventKind `json:"kind"`
	TransactionID int64           `json:"transaction_id"`
	Category      string          `json:"category"`
	Timestamp     time.Time       `json:"timestamp"`
}
