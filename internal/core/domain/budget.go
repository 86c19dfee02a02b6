package domain

import "github.com/shopspring/decimal"

// Budget is a spending limit for one category. Spent is a cached figure that is
// only refreshed through an explicit write-back or a recompute.
type Budget struct {
	ID       int64           `json:"id"`
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Spent    decimal.Decimal `json:"spent"`
	AuditFields
}

// BudgetUsage is a budget together with its spending computed live from the ledger.
type BudgetUsage struct {
	Budget
	LiveSpent   decimal.Decimal `json:"live_spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percent_used"`
}
