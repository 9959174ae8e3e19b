package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date format used for input and output.
const DateLayout = "2006-01-02"

type Expense struct {
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// FormatDate renders the calendar date of the expense.
func (e Expense) FormatDate() string {
	return e.Date.Format(DateLayout)
}

// CategoryExtreme holds the categories with the highest and lowest summed amount.
type CategoryExtreme struct {
	HighestCategory string
	HighestAmount   decimal.Decimal
	LowestCategory  string
	LowestAmount    decimal.Decimal
}
