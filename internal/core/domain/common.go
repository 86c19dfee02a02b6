package domain

import "time"

// AuditFields holds the creation timestamp kept for budgets and goals.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
}
