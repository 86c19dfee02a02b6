package repositories

import "context"

// HealthChecker reports whether the underlying store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
