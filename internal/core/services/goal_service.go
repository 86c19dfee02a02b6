package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// goalService implements portssvc.GoalSvcFacade
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// GoalServiceOption is a functional option for configuring the goal service
type GoalServiceOption func(*goalService)

// WithGoalClock overrides the clock used to date contributions.
func WithGoalClock(clock func() time.Time) GoalServiceOption {
	return func(s *goalService) {
		s.Clock = clock
	}
}

// NewGoalService creates a new goal service with the provided options
func NewGoalService(repo portsrepo.GoalRepositoryFacade, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{goalRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// ListGoals returns all goals, nearest deadline first.
func (s *goalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals")
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	return goals, nil
}

// ListContributions returns the contribution history of a goal.
func (s *goalService) ListContributions(ctx context.Context, goalID int64) ([]domain.Contribution, error) {
	contributions, err := s.goalRepo.ListContributions(ctx, goalID)
	if err != nil {
		return nil, s.wrapError(ctx, err, "list contributions", goalID)
	}
	if contributions == nil {
		contributions = []domain.Contribution{}
	}
	return contributions, nil
}

// CreateGoal validates and persists a goal. An initial current amount is recorded as an opening contribution.
func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	target, err := validation.Positive("target", req.Target)
	if err != nil {
		return nil, err
	}
	current := decimal.Zero
	if req.Current.IsSet() {
		if current, err = validation.NonNegative("current", req.Current); err != nil {
			return nil, err
		}
	}

	goal := domain.Goal{
		Name:        req.Name,
		Target:      target,
		Current:     current,
		AuditFields: domain.AuditFields{CreatedAt: s.Now()},
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := validation.ParseDate("deadline", *req.Deadline)
		if err != nil {
			return nil, err
		}
		goal.Deadline = &deadline
	}
	if req.Description != nil && *req.Description != "" {
		goal.Description = req.Description
	}

	id, err := s.goalRepo.SaveGoal(ctx, goal, goal.CreatedAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("name", goal.Name))
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	goal.ID = id

	s.LogInfo(ctx, "Goal created", slog.Int64("goal_id", id), slog.String("target", target.String()))
	return &goal, nil
}

// UpdateGoal replaces name and target and applies the optional fields that are present.
func (s *goalService) UpdateGoal(ctx context.Context, id int64, req dto.UpdateGoalRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	target, err := validation.Positive("target", req.Target)
	if err != nil {
		return err
	}

	update := domain.GoalUpdate{Name: req.Name, Target: target}
	if req.Current.IsSet() {
		current, err := validation.NonNegative("current", req.Current)
		if err != nil {
			return err
		}
		update.Current = &current
	}
	if req.Deadline.Set {
		update.DeadlineSet = true
		if raw := req.Deadline.NonEmpty(); raw != nil {
			deadline, err := validation.ParseDate("deadline", *raw)
			if err != nil {
				return err
			}
			update.Deadline = &deadline
		}
	}
	if req.Description.Set {
		update.DescriptionSet = true
		update.Description = req.Description.NonEmpty()
	}

	if err := s.goalRepo.UpdateGoal(ctx, id, update, s.Now()); err != nil {
		return s.wrapError(ctx, err, "update goal", id)
	}
	s.LogInfo(ctx, "Goal updated", slog.Int64("goal_id", id))
	return nil
}

// DeleteGoal removes a goal and its contributions.
func (s *goalService) DeleteGoal(ctx context.Context, id int64) error {
	if err := s.goalRepo.DeleteGoal(ctx, id); err != nil {
		return s.wrapError(ctx, err, "delete goal", id)
	}
	s.LogInfo(ctx, "Goal deleted", slog.Int64("goal_id", id))
	return nil
}

// Contribute records a contribution and raises the goal's current amount atomically.
func (s *goalService) Contribute(ctx context.Context, goalID int64, req dto.ContributeRequest) (*domain.Contribution, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	amount, err := validation.Positive("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	contribution, err := s.goalRepo.AddContribution(ctx, goalID, amount, s.Now())
	if err != nil {
		return nil, s.wrapError(ctx, err, "add contribution", goalID)
	}

	s.LogInfo(ctx, "Contribution recorded",
		slog.Int64("goal_id", goalID),
		slog.Int64("contribution_id", contribution.ID),
		slog.String("amount", amount.String()))
	return contribution, nil
}

func (s *goalService) wrapError(ctx context.Context, err error, action string, id int64) error {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	s.LogError(ctx, err, "Failed to "+action, slog.Int64("goal_id", id))
	return fmt.Errorf("failed to %s for goal %d: %w", action, id, err)
}
