package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type SQLiteGoalRepository struct {
	BaseRepository
}

func newSQLiteGoalRepository(db *sql.DB) portsrepo.GoalRepositoryFacade {
	return &SQLiteGoalRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.GoalRepositoryFacade = (*SQLiteGoalRepository)(nil)

var errGoalNotFound = apperrors.NewNotFoundError("Goal not found")

// ListGoals retrieves all goals, earliest deadline first and undated goals last.
func (r *SQLiteGoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	query := `
		SELECT id, name, target_minor, current_minor, deadline, description, created_at
		FROM goals
		ORDER BY deadline IS NULL, deadline ASC, id ASC;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	modelGoals := []models.Goal{}
	for rows.Next() {
		var (
			g                     models.Goal
			target, current       int64
			deadline, description sql.NullString
			createdAt             string
		)
		if err := rows.Scan(&g.ID, &g.Name, &target, &current, &deadline, &description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		if g.Deadline, err = parseDate(deadline); err != nil {
			return nil, err
		}
		if g.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		g.Target = fromMinor(target)
		g.CurrentAmount = fromMinor(current)
		g.Description = stringPtr(description)
		modelGoals = append(modelGoals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}

	return mapping.ToDomainGoalSlice(modelGoals), nil
}

// ListContributions retrieves the contribution history of a goal, newest first.
func (r *SQLiteGoalRepository) ListContributions(ctx context.Context, goalID int64) ([]domain.Contribution, error) {
	var exists bool
	if err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM goals WHERE id = ?);`, goalID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to look up goal %d: %w", goalID, err)
	}
	if !exists {
		return nil, errGoalNotFound
	}

	query := `
		SELECT id, goal_id, amount_minor, contributed_at
		FROM goal_contributions
		WHERE goal_id = ?
		ORDER BY contributed_at DESC, id DESC;
	`
	rows, err := r.DB.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contributions of goal %d: %w", goalID, err)
	}
	defer rows.Close()

	modelContribs := []models.GoalContribution{}
	for rows.Next() {
		var (
			c      models.GoalContribution
			amount int64
			at     string
		)
		if err := rows.Scan(&c.ID, &c.GoalID, &amount, &at); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		if c.ContributedAt, err = parseTimestamp(at); err != nil {
			return nil, err
		}
		c.Amount = fromMinor(amount)
		modelContribs = append(modelContribs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contributions: %w", err)
	}

	return mapping.ToDomainContributionSlice(modelContribs), nil
}

// SaveGoal inserts a goal and, when it starts with money, its opening contribution.
func (r *SQLiteGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal, at time.Time) (int64, error) {
	m := mapping.ToModelGoal(goal)
	var id int64
	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO goals (name, target_minor, current_minor, deadline, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING id;
		`
		err := tx.QueryRowContext(ctx, query, m.Name, toMinor(m.Target), toMinor(m.CurrentAmount),
			formatDate(m.Deadline), nullString(m.Description), formatTimestamp(m.CreatedAt)).Scan(&id)
		if err != nil {
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

// UpdateGoal applies update in one transaction. The single-connection handle
// serialises writers, so the read of current_amount cannot go stale.
func (r *SQLiteGoalRepository) UpdateGoal(ctx context.Context, id int64, update domain.GoalUpdate, at time.Time) error {
	return r.WithTx(ctx, func(tx *sql.Tx) error {
		var currentMinor int64
		err := tx.QueryRowContext(ctx, `SELECT current_minor FROM goals WHERE id = ?;`, id).Scan(&currentMinor)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errGoalNotFound
			}
			return fmt.Errorf("failed to read goal %d: %w", id, err)
		}

		sets := []string{"name = ?", "target_minor = ?"}
		args := []any{update.Name, toMinor(update.Target)}

		if update.Current != nil {
			switch delta := update.Current.Sub(fromMinor(currentMinor)); {
			case delta.IsNegative():
				return apperrors.NewValidationError("current", "current cannot be decreased below the sum of contributions")
			case delta.IsPositive():
				if _, err := insertContribution(ctx, tx, id, delta, at); err != nil {
					return err
				}
				sets = append(sets, "current_minor = ?")
				args = append(args, toMinor(*update.Current))
			}
		}
		if update.DeadlineSet {
			sets = append(sets, "deadline = ?")
			args = append(args, formatDate(update.Deadline))
		}
		if update.DescriptionSet {
			sets = append(sets, "description = ?")
			args = append(args, nullString(update.Description))
		}
		args = append(args, id)

		if _, err := tx.ExecContext(ctx, "UPDATE goals SET "+strings.Join(sets, ", ")+" WHERE id = ?;", args...); err != nil {
			return fmt.Errorf("failed to update goal %d: %w", id, err)
		}
		return nil
	})
}

// DeleteGoal removes a goal. Its contributions are removed by the cascading foreign key.
func (r *SQLiteGoalRepository) DeleteGoal(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM goals WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal %d: %w", id, err)
	}
	return requireRows(res, errGoalNotFound)
}

// AddContribution records a contribution and raises the goal's current amount atomically.
func (r *SQLiteGoalRepository) AddContribution(ctx context.Context, goalID int64, amount decimal.Decimal, at time.Time) (*domain.Contribution, error) {
	var contribution domain.Contribution
	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := insertContribution(ctx, tx, goalID, amount, at)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `UPDATE goals SET current_minor = current_minor + ? WHERE id = ?;`, toMinor(amount), goalID)
		if err != nil {
			return fmt.Errorf("failed to update goal %d: %w", goalID, err)
		}
		if err := requireRows(res, errGoalNotFound); err != nil {
			return err
		}

		contribution = domain.Contribution{ID: id, GoalID: goalID, Amount: fromMinor(toMinor(amount)), Date: at.UTC()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

func insertContribution(ctx context.Context, tx *sql.Tx, goalID int64, amount decimal.Decimal, at time.Time) (int64, error) {
	query := `
		INSERT INTO goal_contributions (goal_id, amount_minor, contributed_at)
		VALUES (?, ?, ?)
		RETURNING id;
	`
	var id int64
	if err := tx.QueryRowContext(ctx, query, goalID, toMinor(amount), formatTimestamp(at)).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, errGoalNotFound
		}
		return 0, fmt.Errorf("failed to insert contribution for goal %d: %w", goalID, err)
	}
	return id, nil
}
