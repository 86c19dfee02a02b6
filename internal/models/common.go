package models

import "time"

// AuditFields mirrors the created_at column shared by budgets and goals.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
}
