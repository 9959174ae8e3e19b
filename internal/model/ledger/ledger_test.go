package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, amount(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func sumValues(m map[string]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range m {
		sum = sum.Add(v)
	}
	return sum
}

func Test_OnEmptyLedger_ShouldReturnZeroAggregates(t *testing.T) {
	l := New()

	assertDecimal(t, "0", l.Total())
	assert.Empty(t, l.TotalByCategory())
	assert.NotNil(t, l.TotalByCategory())
	assert.Empty(t, l.Expenses())
	assert.Equal(t, 0, l.Len())

	_, ok := l.CategoryExtremes()
	assert.False(t, ok)
}

func Test_OnAddExpense_ShouldKeepInsertionOrder(t *testing.T) {
	l := New()
	l.AddExpense("Travel", amount("5.00"), day.AddDate(0, 0, 2))
	l.AddExpense("Food", amount("12.50"), day)
	l.AddExpense("Travel", amount("5.00"), day.AddDate(0, 0, 2))

	exps := l.Expenses()
	require.Len(t, exps, 3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "Travel", exps[0].Category)
	assert.Equal(t, "Food", exps[1].Category)
	assert.Equal(t, "Travel", exps[2].Category)
	assert.Equal(t, "2024-03-12", exps[0].FormatDate())
	assert.Equal(t, "2024-03-10", exps[1].FormatDate())
}

func Test_OnAddExpense_ShouldDropTimeOfDay(t *testing.T) {
	l := New()
	l.AddExpense("Food", amount("1"), time.Date(2024, time.March, 10, 23, 59, 1, 5, time.UTC))

	assert.True(t, day.Equal(l.Expenses()[0].Date))
}

func Test_OnDatesFromDifferentZones_ShouldOrderByCalendarDay(t *testing.T) {
	east := time.FixedZone("UTC+14", 14*60*60)
	west := time.FixedZone("UTC-12", -12*60*60)

	l := New()
	l.AddExpense("Later", amount("1"), time.Date(2024, time.March, 11, 1, 0, 0, 0, east))
	l.AddExpense("Earlier", amount("1"), time.Date(2024, time.March, 10, 0, 30, 0, 0, west))

	exps := l.Expenses()
	assert.Equal(t, "2024-03-11", exps[0].FormatDate())
	assert.Equal(t, "2024-03-10", exps[1].FormatDate())
	assert.Equal(t, time.UTC, exps[0].Date.Location())
	assert.True(t, exps[1].Date.Before(exps[0].Date))
}

func Test_OnExpensesMutation_ShouldNotAffectLedger(t *testing.T) {
	l := New()
	l.AddExpense("Food", amount("12.50"), day)

	exps := l.Expenses()
	exps[0].Category = "Changed"
	exps[0].Amount = amount("1000")
	_ = append(exps, exps[0])

	assert.Equal(t, "Food", l.Expenses()[0].Category)
	assertDecimal(t, "12.50", l.Total())
	assert.Equal(t, 1, l.Len())
}

func Test_OnTotal_ShouldIncludeZeroAndNegativeAmounts(t *testing.T) {
	l := New()
	l.AddExpense("Food", amount("12.50"), day)
	l.AddExpense("Refund", amount("-2.25"), day)
	l.AddExpense("", amount("0"), day)

	assertDecimal(t, "10.25", l.Total())
	assert.Len(t, l.TotalByCategory(), 3)
	assertDecimal(t, "0", l.TotalByCategory()[""])
}

func Test_OnSameCategory_ShouldSumIntoOneEntry(t *testing.T) {
	l := New()
	l.AddExpense("Food", amount("12.50"), day)
	l.AddExpense("Food", amount("3.75"), day)

	totals := l.TotalByCategory()
	assert.Len(t, totals, 1)
	assertDecimal(t, "16.25", totals["Food"])
}

func Test_OnCategoriesDifferingInCase_ShouldKeepSeparateEntries(t *testing.T) {
	l := New()
	l.AddExpense("Food", amount("1"), day)
	l.AddExpense("food", amount("2"), day)
	l.AddExpense("Food ", amount("3"), day)

	assert.Len(t, l.TotalByCategory(), 3)
}

func Test_OnRandomExpenses_TotalShouldMatchSums(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	categories := []string{"Food", "Travel", "Entertainment", "", "Rent"}

	for run := 0; run < 50; run++ {
		l := New()
		expected := decimal.Zero
		calls := rnd.Intn(30)
		for i := 0; i < calls; i++ {
			am := decimal.New(rnd.Int63n(200000)-50000, -2)
			expected = expected.Add(am)
			l.AddExpense(categories[rnd.Intn(len(categories))], am, day.AddDate(0, 0, rnd.Intn(60)))
		}

		assert.Equal(t, calls, len(l.Expenses()))
		assert.True(t, expected.Equal(l.Total()), "run %d: expected %s, got %s", run, expected, l.Total())
		assert.True(t, l.Total().Equal(sumValues(l.TotalByCategory())), "run %d", run)
	}
}

func Test_OnCategoryExtremes_ShouldReturnHighestAndLowest(t *testing.T) {
	l := New()
	l.AddExpense("Food", amount("12.50"), day)
	l.AddExpense("Travel", amount("5.00"), day)
	l.AddExpense("Entertainment", amount("25.00"), day)

	ext, ok := l.CategoryExtremes()
	require.True(t, ok)
	assert.Equal(t, "Entertainment", ext.HighestCategory)
	assertDecimal(t, "25.00", ext.HighestAmount)
	assert.Equal(t, "Travel", ext.LowestCategory)
	assertDecimal(t, "5.00", ext.LowestAmount)
}

func Test_OnCategoryExtremesWithNegativeTotals_ShouldReturnLowestNegative(t *testing.T) {
	l := New()
	l.AddExpense("Refund", amount("-7"), day)
	l.AddExpense("Food", amount("3"), day)
	l.AddExpense("Fees", amount("-1"), day)

	ext, ok := l.CategoryExtremes()
	require.True(t, ok)
	assert.Equal(t, "Food", ext.HighestCategory)
	assert.Equal(t, "Refund", ext.LowestCategory)
	assertDecimal(t, "-7", ext.LowestAmount)
}

func Test_OnCategoryExtremesTie_ShouldReturnAnyTiedCategory(t *testing.T) {
	l := New()
	l.AddExpense("Food", amount("10.0"), day)
	l.AddExpense("Travel", amount("10.0"), day)

	ext, ok := l.CategoryExtremes()
	require.True(t, ok)
	assert.Contains(t, []string{"Food", "Travel"}, ext.HighestCategory)
	assert.Contains(t, []string{"Food", "Travel"}, ext.LowestCategory)
	assertDecimal(t, "10", ext.HighestAmount)
	assertDecimal(t, "10", ext.LowestAmount)
}

func Test_OnSingleCategory_ExtremesShouldMatch(t *testing.T) {
	l := New()
	l.AddExpense("Food", amount("12.50"), day)

	ext, ok := l.CategoryExtremes()
	require.True(t, ok)
	assert.Equal(t, "Food", ext.HighestCategory)
	assert.Equal(t, "Food", ext.LowestCategory)
	assertDecimal(t, "12.50", ext.HighestAmount)
	assertDecimal(t, "12.50", ext.LowestAmount)
}
