package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a row of the goals table.
type Goal struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	Target        decimal.Decimal `db:"target"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      *time.Time      `db:"deadline"`
	Description   *string         `db:"description"`
	AuditFields
}

// GoalContribution is a row of the goal_contributions table.
type GoalContribution struct {
	ID            int64           `db:"id"`
	GoalID        int64           `db:"goal_id"`
	Amount        decimal.Decimal `db:"amount"`
	ContributedAt time.Time       `db:"contributed_at"`
}
