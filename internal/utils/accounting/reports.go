package accounting

import (
	"sort"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildMonthlySummary turns per-month totals into report rows ordered by month.
// Months without transactions are left out unless zeroFill is set, in which case
// all twelve months are returned.
func BuildMonthlySummary(rows []domain.MonthlyTotals, zeroFill bool) []domain.MonthlySummary {
	var byMonth [13]*domain.MonthlySummary
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 || row.Count == 0 {
			continue
		}
		m := byMonth[row.Month]
		if m == nil {
			m = &domain.MonthlySummary{Month: row.Month, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[row.Month] = m
		}
		m.Income = m.Income.Add(row.Income)
		m.Expense = m.Expense.Add(row.Expense)
	}

	summaries := make([]domain.MonthlySummary, 0, 12)
	for month := 1; month <= 12; month++ {
		m := byMonth[month]
		if m == nil {
			if !zeroFill {
				continue
			}
			m = &domain.MonthlySummary{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
		}
		m.Savings = m.Income.Sub(m.Expense)
		summaries = append(summaries, *m)
	}
	return summaries
}

// BuildCategoryBreakdown computes each category's share of total expense,
// ordered by amount descending with the category name as tie-break.
func BuildCategoryBreakdown(rows []domain.CategoryTotal) []domain.CategoryBreakdown {
	total := decimal.Zero
	merged := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		total = total.Add(row.Amount)
		if prev, ok := merged[row.Category]; ok {
			merged[row.Category] = prev.Add(row.Amount)
		} else {
			merged[row.Category] = row.Amount
		}
	}

	breakdown := make([]domain.CategoryBreakdown, 0, len(merged))
	for category, amount := range merged {
		breakdown = append(breakdown, domain.CategoryBreakdown{
			Category:   category,
			Amount:     amount,
			Percentage: Percentage(amount, total),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if c := breakdown[i].Amount.Cmp(breakdown[j].Amount); c != 0 {
			return c > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}
