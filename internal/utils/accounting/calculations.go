package accounting

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns 100 * part / whole rounded to two places, or zero when whole is zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(2)
}

// BuildBalanceSummary derives the net balance from income and expense totals.
func BuildBalanceSummary(income, expense decimal.Decimal) domain.BalanceSummary {
	return domain.BalanceSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// BuildBudgetUsage pairs every budget with the live expense total of its category.
func BuildBudgetUsage(budgets []domain.Budget, spentByCategory map[string]decimal.Decimal) []domain.BudgetUsage {
	usage := make([]domain.BudgetUsage, 0, len(budgets))
	for _, b := range budgets {
		spent, ok := spentByCategory[b.Category]
		if !ok {
			spent = decimal.Zero
		}
		usage = append(usage, domain.BudgetUsage{
			Budget:      b,
			LiveSpent:   spent,
			Remaining:   b.Amount.Sub(spent),
			PercentUsed: Percentage(spent, b.Amount),
		})
	}
	return usage
}
