// Package ledger keeps expenses in memory and computes aggregates over them.
//
// A Ledger has no internal synchronization. It is meant to be driven by a single
// caller; share it between goroutines only behind an external lock.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

type Ledger struct {
	expenses []expense.Expense
}

func New() *Ledger {
	return &Ledger{}
}

// AddExpense appends a new expense. The ledger does not validate its input:
// empty categories and non-positive amounts are recorded as given.
func (l *Ledger) AddExpense(category string, amount decimal.Decimal, date time.Time) {
	l.expenses = append(l.expenses, expense.Expense{
		Category: category,
		Amount:   amount,
		Date:     calendarDay(date),
	})
}

// calendarDay keeps the year, month and day as seen in date's own location and
// pins them to midnight UTC, so dates from different locations order by calendar.
func calendarDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (l *Ledger) Len() int {
	return len(l.expenses)
}

// Expenses returns a copy of the recorded expenses in insertion order.
func (l *Ledger) Expenses() []expense.Expense {
	res := make([]expense.Expense, len(l.expenses))
	copy(res, l.expenses)
	return res
}

func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, exp := range l.expenses {
		total = total.Add(exp.Amount)
	}
	return total
}

// TotalByCategory sums amounts per exact category string.
func (l *Ledger) TotalByCategory() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal)
	for _, exp := range l.expenses {
		sum, ok := m[exp.Category]
		if !ok {
			sum = decimal.Zero
		}
		m[exp.Category] = sum.Add(exp.Amount)
	}
	return m
}

// CategoryExtremes reports the categories with the highest and lowest totals.
// The second result is false when nothing has been recorded. When several
// categories tie, whichever is met first while ranging over the totals wins.
func (l *Ledger) CategoryExtremes() (expense.CategoryExtreme, bool) {
	totals := l.TotalByCategory()
	if len(totals) == 0 {
		return expense.CategoryExtreme{}, false
	}

	var res expense.CategoryExtreme
	first := true
	for cat, am := range totals {
		if first || am.GreaterThan(res.HighestAmount) {
			res.HighestCategory, res.HighestAmount = cat, am
		}
		if first || am.LessThan(res.LowestAmount) {
			res.LowestCategory, res.LowestAmount = cat, am
		}
		first = false
	}
	return res, true
}
