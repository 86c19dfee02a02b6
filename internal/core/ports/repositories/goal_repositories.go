package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalReader defines read operations for goals and their contributions
type GoalReader interface {
	// ListGoals returns goals ordered by deadline asc with undated goals last.
	ListGoals(ctx context.Context) ([]domain.Goal, error)

	// ListContributions returns a goal's contributions, newest first.
	// Returns apperrors.ErrNotFound if the goal does not exist.
	ListContributions(ctx context.Context, goalID int64) ([]domain.Contribution, error)
}

// GoalWriter defines write operations for goals
type GoalWriter interface {
	// SaveGoal persists a goal. A positive Current is recorded as an opening
	// contribution dated at in the same transaction.
	SaveGoal(ctx context.Context, goal domain.Goal, at time.Time) (int64, error)

	// UpdateGoal applies update atomically. An increase of Current is recorded
	// as a contribution dated at.
	UpdateGoal(ctx context.Context, id int64, update domain.GoalUpdate, at time.Time) error

	// DeleteGoal removes a goal together with its contributions.
	DeleteGoal(ctx context.Context, id int64) error

	// AddContribution inserts a contribution and increments the goal's current
	// amount in one transaction. Returns apperrors.ErrNotFound if the goal does not exist.
	AddContribution(ctx context.Context, goalID int64, amount decimal.Decimal, at time.Time) (*domain.Contribution, error)
}

// GoalRepositoryFacade combines all goal repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
