package shell

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	enterCategoryMessage = "Enter a category: "
	enterAmountMessage   = "Enter an amount: "
	enterDateMessage     = "Enter a date (YYYY-MM-DD): "

	emptyCategoryMessage     = "Category cannot be empty!"
	inputTooLongMessage      = "Input is too long!"
	invalidAmountMessage     = "Invalid amount!"
	nonPositiveAmountMessage = "Amount must be positive!"
	invalidDateMessage       = "Invalid date format!"
	addedMessage             = "Successfully added expense."
	similarCategoryMessage   = "Note: similar category %q already exists.\n"

	totalMessage      = "Total expenses: %s\n"
	noExpensesMessage = "No expenses recorded yet."
	thankYouMessage   = "Thank you for using the Expense Tracker App!"
	exitingMessage    = "Exiting..."
)

// Amounts are kept within a range that renders instantly.
const (
	maxAmountLength   = 64
	maxAmountExponent = 20
)

var errAmountOutOfRange = errors.New("amount out of range")

func parseAmount(raw string) (decimal.Decimal, error) {
	if len(raw) > maxAmountLength {
		return decimal.Decimal{}, errAmountOutOfRange
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "parse amount")
	}
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Decimal{}, errAmountOutOfRange
	}
	return amount, nil
}

func (s *Shell) reject(field, message string) error {
	logger.Debug("rejected input", zap.String("field", field))
	observeRejected(field)
	s.println(message)
	return nil
}

// readFailed turns an over-long answer into a rejection of field and passes
// any other read error through.
func (s *Shell) readFailed(field string, err error) error {
	if errors.Is(err, errLineTooLong) {
		return s.reject(field, inputTooLongMessage)
	}
	return err
}

func (s *Shell) handleAddExpense(ctx context.Context) error {
	category, err := s.prompt(ctx, enterCategoryMessage)
	if err != nil {
		return s.readFailed("category", err)
	}
	if category == "" {
		return s.reject("category", emptyCategoryMessage)
	}

	rawAmount, err := s.promptToken(ctx, enterAmountMessage)
	if err != nil {
		return s.readFailed("amount", err)
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return s.reject("amount", invalidAmountMessage)
	}
	if !amount.IsPositive() {
		return s.reject("amount", nonPositiveAmountMessage)
	}

	rawDate, err := s.promptToken(ctx, enterDateMessage)
	if err != nil {
		return s.readFailed("date", err)
	}
	date, err := time.Parse(expense.DateLayout, rawDate)
	if err != nil {
		return s.reject("date", invalidDateMessage)
	}

	hint := similarCategory(category, s.recordedCategories(), s.hintDistance)

	s.ledger.AddExpense(category, amount, date)
	counterExpensesAdded.Inc()
	logger.Info("expense added",
		zap.String("category", category),
		zap.Stringer("amount", amount),
		zap.String("date", rawDate))

	s.println(addedMessage)
	if hint != "" {
		s.printf(similarCategoryMessage, hint)
	}
	return nil
}

func (s *Shell) recordedCategories() []string {
	if s.hintDistance <= 0 {
		return nil
	}
	totals := s.ledger.TotalByCategory()
	res := make([]string, 0, len(totals))
	for cat := range totals {
		res = append(res, cat)
	}
	return res
}

func (s *Shell) handleTotal(_ context.Context) error {
	s.printf(totalMessage, formatAmount(s.ledger.Total()))
	return nil
}

func (s *Shell) handleTotalByCategory(_ context.Context) error {
	totals := s.ledger.TotalByCategory()
	if len(totals) == 0 {
		s.println(noExpensesMessage)
		return nil
	}
	s.println(formatTotalsByCategory(totals))
	return nil
}

func (s *Shell) handleTrend(_ context.Context) error {
	exps := s.ledger.Expenses()
	if len(exps) == 0 {
		s.println(noExpensesMessage)
		return nil
	}
	s.println(formatTrend(exps))
	return nil
}

func (s *Shell) handleExtremes(_ context.Context) error {
	ext, ok := s.ledger.CategoryExtremes()
	if !ok {
		s.println(noExpensesMessage)
		return nil
	}
	s.println(formatExtremes(ext))
	return nil
}

func (s *Shell) handleExit(_ context.Context) error {
	s.println(thankYouMessage)
	s.println(exitingMessage)
	return errExit
}
