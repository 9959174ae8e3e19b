package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const trendRule = "-------------------------------------------"

func formatAmount(am decimal.Decimal) string {
	return am.StringFixed(2)
}

func formatCategoryRow(category string, am decimal.Decimal) string {
	return fmt.Sprintf("%-15s : %s", category, formatAmount(am))
}

type categoryTotal struct {
	category string
	amount   decimal.Decimal
}

// sortedTotals orders categories by amount descending, then by name.
func sortedTotals(totals map[string]decimal.Decimal) []categoryTotal {
	records := make([]categoryTotal, 0, len(totals))
	for cat, am := range totals {
		records = append(records, categoryTotal{cat, am})
	}
	sort.Slice(records, func(i, j int) bool {
		if c := records[i].amount.Cmp(records[j].amount); c != 0 {
			return c > 0
		}
		return records[i].category < records[j].category
	})
	return records
}

func formatTotalsByCategory(totals map[string]decimal.Decimal) string {
	res := make([]string, 0, len(totals)+1)
	res = append(res, "=== Total Expenses by Category ===")
	for _, rec := range sortedTotals(totals) {
		res = append(res, formatCategoryRow(rec.category, rec.amount))
	}
	return strings.Join(res, "\n")
}

// sortByDate orders expenses oldest first; expenses on the same day keep their
// recorded order.
func sortByDate(exps []expense.Expense) []expense.Expense {
	sorted := make([]expense.Expense, len(exps))
	copy(sorted, exps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func formatTrend(exps []expense.Expense) string {
	res := make([]string, 0, len(exps)+2)
	res = append(res,
		fmt.Sprintf("%-12s | %-15s | %10s", "Date", "Category", "Amount"),
		trendRule,
	)
	for _, exp := range sortByDate(exps) {
		res = append(res, fmt.Sprintf("%-12s | %-15s | %10s",
			exp.FormatDate(), exp.Category, formatAmount(exp.Amount)))
	}
	return strings.Join(res, "\n")
}

func formatExtremes(ext expense.CategoryExtreme) string {
	return strings.Join([]string{
		"Category with highest expense:",
		formatCategoryRow(ext.HighestCategory, ext.HighestAmount),
		"Category with lowest expense:",
		formatCategoryRow(ext.LowestCategory, ext.LowestAmount),
	}, "\n")
}
