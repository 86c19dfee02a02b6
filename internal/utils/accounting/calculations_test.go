package accounting_test

import (
	"testing"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	assert.True(t, accounting.Percentage(d("1"), d("3")).Equal(d("33.33")))
	assert.True(t, accounting.Percentage(d("2"), d("3")).Equal(d("66.67")))
	assert.True(t, accounting.Percentage(d("5"), decimal.Zero).IsZero())
}

func TestBuildBalanceSummary(t *testing.T) {
	got := accounting.BuildBalanceSummary(d("1000"), d("300"))
	assert.True(t, got.TotalIncome.Equal(d("1000")))
	assert.True(t, got.TotalExpense.Equal(d("300")))
	assert.True(t, got.Balance.Equal(d("700")))
}

func TestBuildBudgetUsage(t *testing.T) {
	budgets := []domain.Budget{
		{ID: 1, Category: "Food", Amount: d("500")},
		{ID: 2, Category: "Fun", Amount: d("100")},
	}

	got := accounting.BuildBudgetUsage(budgets, map[string]decimal.Decimal{"Food": d("125")})

	require.Len(t, got, 2)
	assert.True(t, got[0].LiveSpent.Equal(d("125")))
	assert.True(t, got[0].Remaining.Equal(d("375")))
	assert.True(t, got[0].PercentUsed.Equal(d("25")))
	assert.True(t, got[1].LiveSpent.IsZero())
	assert.True(t, got[1].Remaining.Equal(d("100")))
	assert.True(t, got[1].PercentUsed.IsZero())
}
