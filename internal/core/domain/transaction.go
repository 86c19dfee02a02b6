package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction is a single ledger entry. Only Description and Amount are editable after creation.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // Always positive; the sign comes from Type
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// TransactionUpdate is the editable subset of a Transaction.
type TransactionUpdate struct {
	Description string
	Amount      decimal.Decimal
}

// LedgerCursor marks the last row of a ledger page in (date desc, id desc) order.
type LedgerCursor struct {
	Date time.Time
	ID   int64
}

// LedgerPage selects a window of the ledger. A zero Limit means no limit.
type LedgerPage struct {
	Limit int
	After *LedgerCursor
}
