package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. Current always equals the sum of its contributions.
type Goal struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
	Description *string         `json:"description,omitempty"`
	AuditFields
}

// GoalUpdate carries a full replacement of name and target plus optional changes.
// Current is nil when unchanged. DeadlineSet/DescriptionSet mark fields present in
// the request; a set field with a nil value clears the column.
type GoalUpdate struct {
	Name           string
	Target         decimal.Decimal
	Current        *decimal.Decimal
	DeadlineSet    bool
	Deadline       *time.Time
	DescriptionSet bool
	Description    *string
}

// Contribution is an append-only record of money added to a goal.
type Contribution struct {
	ID     int64           `json:"id"`
	GoalID int64           `json:"goal_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}
