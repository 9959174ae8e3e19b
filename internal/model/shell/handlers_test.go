package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/shell/mock"
)

func newTestShell(t *testing.T, l expenseLedger, input string, distance int) (*Shell, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	s := New(l, strings.NewReader(input), out, hintConfig(distance))
	s.lines = newLineReader(s.in)
	t.Cleanup(s.lines.Close)
	return s, out
}

func Test_OnAddExpense_ShouldPassParsedValuesToLedger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := mock.NewExpenseLedgerMock(m)

	l.TotalByCategoryMock.
		Return(map[string]decimal.Decimal{"Travel": decimal.NewFromInt(5)}).
		AddExpenseMock.
		Inspect(func(category string, amount decimal.Decimal, date time.Time) {
			assert.Equal(m, "Groceries", category)
			assert.True(m, decimal.RequireFromString("12.5").Equal(amount))
			assert.Equal(m, "2024-03-10", date.Format(expense.DateLayout))
		}).
		Return()

	s, out := newTestShell(t, l, "  Groceries  \n12.50 and change\n2024-03-10 later\n", 2)
	err := s.handleAddExpense(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), l.AddExpenseAfterCounter())
	assert.Equal(t,
		"Enter a category: Enter an amount: Enter a date (YYYY-MM-DD): Successfully added expense.\n",
		out.String())
}

func Test_OnNonPositiveAmount_ShouldNotCallLedger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := mock.NewExpenseLedgerMock(m)

	s, out := newTestShell(t, l, "Food\n-0.01\n", 2)
	err := s.handleAddExpense(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Amount must be positive!\n")
	assert.Equal(t, uint64(0), l.AddExpenseAfterCounter())
}

func Test_OnHintDisabled_ShouldNotQueryCategories(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := mock.NewExpenseLedgerMock(m)

	l.AddExpenseMock.Return()

	s, _ := newTestShell(t, l, "Food\n3\n2024-03-10\n", 0)
	assert.NoError(t, s.handleAddExpense(context.Background()))
}

func Test_OnShowTotal_ShouldPrintTwoFractionDigits(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := mock.NewExpenseLedgerMock(m)

	l.TotalMock.Return(decimal.RequireFromString("7.5"))

	s, out := newTestShell(t, l, "", 0)
	assert.NoError(t, s.handleTotal(context.Background()))
	assert.Equal(t, "Total expenses: 7.50\n", out.String())
}

func Test_OnShowExtremes_WhenAbsent_ShouldPrintNoExpenses(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := mock.NewExpenseLedgerMock(m)

	l.CategoryExtremesMock.Return(expense.CategoryExtreme{}, false)

	s, out := newTestShell(t, l, "", 0)
	assert.NoError(t, s.handleExtremes(context.Background()))
	assert.Equal(t, "No expenses recorded yet.\n", out.String())
}

func Test_OnShowTrend_ShouldNotReorderLedger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := mock.NewExpenseLedgerMock(m)

	exps := []expense.Expense{
		{Category: "B", Amount: decimal.NewFromInt(2), Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
		{Category: "A", Amount: decimal.NewFromInt(1), Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	l.ExpensesMock.Return(exps)

	s, out := newTestShell(t, l, "", 0)
	assert.NoError(t, s.handleTrend(context.Background()))

	assert.Less(t, strings.Index(out.String(), "2024-05-01"), strings.Index(out.String(), "2024-05-02"))
	assert.Equal(t, "B", exps[0].Category)
}

func Test_OnParseAmount_ShouldBoundExponentAndLength(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"plain", "12.50", true},
		{"exponent form", "1.5e2", true},
		{"largest exponent", "1e20", true},
		{"smallest exponent", "1e-20", true},
		{"huge exponent", "1e99999999", false},
		{"tiny exponent", "1e-99999999", false},
		{"over length", strings.Repeat("1", maxAmountLength+1), false},
		{"not a number", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAmount(tt.raw)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
