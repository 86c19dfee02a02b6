package accounting_test

import (
	"testing"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildMonthlySummary_OmitsEmptyMonths(t *testing.T) {
	rows := []domain.MonthlyTotals{
		{Month: 7, Income: decimal.Zero, Expense: d("200"), Count: 1},
		{Month: 3, Income: d("1000"), Expense: d("400"), Count: 2},
	}

	got := accounting.BuildMonthlySummary(rows, false)

	require.Len(t, got, 2)
	assert.Equal(t, "03", got[0].MonthLabel())
	assert.True(t, got[0].Income.Equal(d("1000")))
	assert.True(t, got[0].Expense.Equal(d("400")))
	assert.True(t, got[0].Savings.Equal(d("600")))
	assert.Equal(t, "07", got[1].MonthLabel())
	assert.True(t, got[1].Income.IsZero())
	assert.True(t, got[1].Savings.Equal(d("-200")))
}

func TestBuildMonthlySummary_ZeroFill(t *testing.T) {
	rows := []domain.MonthlyTotals{{Month: 2, Income: d("10"), Expense: d("5"), Count: 1}}

	got := accounting.BuildMonthlySummary(rows, true)

	require.Len(t, got, 12)
	for i, m := range got {
		assert.Equal(t, i+1, m.Month)
	}
	assert.True(t, got[1].Savings.Equal(d("5")))
	assert.True(t, got[0].Income.IsZero())
	assert.True(t, got[11].Savings.IsZero())
}

func TestBuildMonthlySummary_EmptyLedger(t *testing.T) {
	got := accounting.BuildMonthlySummary(nil, false)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuildMonthlySummary_IgnoresOutOfRangeMonths(t *testing.T) {
	got := accounting.BuildMonthlySummary([]domain.MonthlyTotals{
		{Month: 0, Income: d("1"), Count: 1},
		{Month: 13, Income: d("1"), Count: 1},
	}, false)
	assert.Empty(t, got)
}

func TestBuildCategoryBreakdown(t *testing.T) {
	rows := []domain.CategoryTotal{
		{Category: "Transport", Amount: d("300")},
		{Category: "Food", Amount: d("700")},
	}

	got := accounting.BuildCategoryBreakdown(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "Food", got[0].Category)
	assert.True(t, got[0].Amount.Equal(d("700")))
	assert.True(t, got[0].Percentage.Equal(d("70")))
	assert.Equal(t, "Transport", got[1].Category)
	assert.True(t, got[1].Percentage.Equal(d("30")))
}

func TestBuildCategoryBreakdown_RoundsAndBreaksTies(t *testing.T) {
	rows := []domain.CategoryTotal{
		{Category: "b", Amount: d("1")},
		{Category: "a", Amount: d("1")},
		{Category: "c", Amount: d("1")},
	}

	got := accounting.BuildCategoryBreakdown(rows)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Category, got[1].Category, got[2].Category})
	assert.True(t, got[0].Percentage.Equal(d("33.33")), got[0].Percentage.String())
}

func TestBuildCategoryBreakdown_ZeroTotal(t *testing.T) {
	got := accounting.BuildCategoryBreakdown([]domain.CategoryTotal{{Category: "x", Amount: decimal.Zero}})
	require.Len(t, got, 1)
	assert.True(t, got[0].Percentage.IsZero())

	empty := accounting.BuildCategoryBreakdown(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
