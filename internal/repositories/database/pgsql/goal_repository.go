package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

var errGoalNotFound = apperrors.NewNotFoundError("Goal not found")

// ListGoals retrieves all goals, earliest deadline first.
func (r *PgxGoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	query := `
		SELECT id, name, target, current_amount, deadline, description, created_at
		FROM goals
		ORDER BY deadline ASC NULLS LAST, id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	modelGoals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Goal, error) {
		var g models.Goal
		err := row.Scan(&g.ID, &g.Name, &g.Target, &g.CurrentAmount, &g.Deadline, &g.Description, &g.CreatedAt)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan goals: %w", err)
	}

	return mapping.ToDomainGoalSlice(modelGoals), nil
}

// ListContributions retrieves the contribution history of a goal, newest first.
func (r *PgxGoalRepository) ListContributions(ctx context.Context, goalID int64) ([]domain.Contribution, error) {
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM goals WHERE id = $1);`, goalID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to look up goal %d: %w", goalID, err)
	}
	if !exists {
		return nil, errGoalNotFound
	}

	query := `
		SELECT id, goal_id, amount, contributed_at
		FROM goal_contributions
		WHERE goal_id = $1
		ORDER BY contributed_at DESC, id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contributions of goal %d: %w", goalID, err)
	}
	defer rows.Close()

	modelContribs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GoalContribution, error) {
		var c models.GoalContribution
		err := row.Scan(&c.ID, &c.GoalID, &c.Amount, &c.ContributedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan contributions: %w", err)
	}

	return mapping.ToDomainContributionSlice(modelContribs), nil
}

// SaveGoal inserts a goal and, when it starts with money, its opening contribution.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal, at time.Time) (int64, error) {
	m := mapping.ToModelGoal(goal)
	var id int64
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO goals (name, target, current_amount, deadline, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;
		`
		if err := tx.QueryRow(ctx, query, m.Name, m.Target, m.CurrentAmount, m.Deadline, m.Description, m.CreatedAt).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert goal: %w", err)
		}
		if m.CurrentAmount.IsPositive() {
			if _, err := insertContribution(ctx, tx, id, m.CurrentAmount, at); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateGoal applies update under a row lock on the goal.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, id int64, update domain.GoalUpdate, at time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		var current decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT current_amount FROM goals WHERE id = $1 FOR UPDATE;`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errGoalNotFound
			}
			return fmt.Errorf("failed to lock goal %d: %w", id, err)
		}

		sets := []string{"name = $1", "target = $2"}
		args := []any{update.Name, update.Target}

		if update.Current != nil {
			switch delta := update.Current.Sub(current); {
			case delta.IsNegative():
				return apperrors.NewValidationError("current", "current cannot be decreased below the sum of contributions")
			case delta.IsPositive():
				if _, err := insertContribution(ctx, tx, id, delta, at); err != nil {
					return err
				}
				args = append(args, *update.Current)
				sets = append(sets, fmt.Sprintf("current_amount = $%d", len(args)))
			}
		}
		if update.DeadlineSet {
			args = append(args, update.Deadline)
			sets = append(sets, fmt.Sprintf("deadline = $%d", len(args)))
		}
		if update.DescriptionSet {
			args = append(args, update.Description)
			sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
		}
		args = append(args, id)
		query := fmt.Sprintf("UPDATE goals SET %s WHERE id = $%d;", strings.Join(sets, ", "), len(args))

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update goal %d: %w", id, err)
		}
		return nil
	})
}

// DeleteGoal removes a goal. Its contributions are removed by the cascading foreign key.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return errGoalNotFound
	}
	return nil
}

// AddContribution records a contribution and raises the goal's current amount atomically.
func (r *PgxGoalRepository) AddContribution(ctx context.Context, goalID int64, amount decimal.Decimal, at time.Time) (*domain.Contribution, error) {
	var contribution domain.Contribution
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		id, err := insertContribution(ctx, tx, goalID, amount, at)
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `UPDATE goals SET current_amount = current_amount + $1 WHERE id = $2;`, amount, goalID)
		if err != nil {
			return fmt.Errorf("failed to update goal %d: %w", goalID, err)
		}
		if tag.RowsAffected() == 0 {
			return errGoalNotFound
		}

		contribution = domain.Contribution{ID: id, GoalID: goalID, Amount: amount, Date: at.UTC()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

func insertContribution(ctx context.Context, tx pgx.Tx, goalID int64, amount decimal.Decimal, at time.Time) (int64, error) {
	query := `
		INSERT INTO goal_contributions (goal_id, amount, contributed_at)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	var id int64
	if err := tx.QueryRow(ctx, query, goalID, amount, at.UTC()).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, errGoalNotFound
		}
		return 0, fmt.Errorf("failed to insert contribution for goal %d: %w", goalID, err)
	}
	return id, nil
}
