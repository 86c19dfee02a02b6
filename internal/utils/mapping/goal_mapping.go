package mapping

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelGoal converts a domain Goal to a model Goal
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		ID:            d.ID,
		Name:          d.Name,
		Target:        d.Target,
		CurrentAmount: d.Current,
		Deadline:      dateOnly(d.Deadline),
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoal converts a model Goal to a domain Goal
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		ID:          m.ID,
		Name:        m.Name,
		Target:      m.Target,
		Current:     m.CurrentAmount,
		Deadline:    dateOnly(m.Deadline),
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGoalSlice converts a slice of model Goals to domain Goals
func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	ds := make([]domain.Goal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoal(m)
	}
	return ds
}

// ToDomainContribution converts a model GoalContribution to a domain Contribution
func ToDomainContribution(m models.GoalContribution) domain.Contribution {
	return domain.Contribution{
		ID:     m.ID,
		GoalID: m.GoalID,
		Amount: m.Amount,
		Date:   m.ContributedAt.UTC(),
	}
}

// ToDomainContributionSlice converts a slice of model GoalContributions to domain Contributions
func ToDomainContributionSlice(ms []models.GoalContribution) []domain.Contribution {
	ds := make([]domain.Contribution, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContribution(m)
	}
	return ds
}

// dateOnly normalises a deadline to midnight UTC of its calendar day.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, mo, d := t.Date()
	v := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	return &v
}
