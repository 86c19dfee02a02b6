package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// GoalReaderSvc defines read operations on goals
type GoalReaderSvc interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	ListContributions(ctx context.Context, goalID int64) ([]domain.Contribution, error)
}

// GoalWriterSvc defines write operations on goals
type GoalWriterSvc interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, id int64, req dto.UpdateGoalRequest) error
	DeleteGoal(ctx context.Context, id int64) error

	// Contribute atomically records a contribution and raises the goal's current amount.
	Contribute(ctx context.Context, goalID int64, req dto.ContributeRequest) (*domain.Contribution, error)
}

// GoalSvcFacade combines all goal service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
