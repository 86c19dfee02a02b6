package models

import "github.com/shopspring/decimal"

// Budget is a row of the budgets table.
type Budget struct {
	ID       int64           `db:"id"`
	Category string          `db:"category"`
	Name     string          `db:"name"`
	Amount   decimal.Decimal `db:"amount"`
	Spent    decimal.Decimal `db:"spent"`
	AuditFields
}
