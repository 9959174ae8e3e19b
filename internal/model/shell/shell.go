// Package shell runs the interactive expense menu on top of a ledger.
package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	welcomeMessage = "Welcome to the Expense Tracker App!"
	menuMessage    = "\n1. Add expense\n" +
		"2. View total expense\n" +
		"3. View total expense by category\n" +
		"4. View expense trend\n" +
		"5. View highest and lowest spend category\n" +
		"6. Exit\n" +
		"Select an option (1-6): "
	invalidOptionMessage = "Invalid option. Try again."
)

const (
	addExpenseOption      = "1"
	totalOption           = "2"
	totalByCategoryOption = "3"
	trendOption           = "4"
	extremesOption        = "5"
	exitOption            = "6"
)

var errExit = errors.New("exit requested")

//go:generate minimock -i max.ks1230/expense-tracker/internal/model/shell.expenseLedger -o ./mock -s _mock.go

type expenseLedger interface {
	AddExpense(category string, amount decimal.Decimal, date time.Time)
	Total() decimal.Decimal
	TotalByCategory() map[string]decimal.Decimal
	Expenses() []expense.Expense
	CategoryExtremes() (expense.CategoryExtreme, bool)
}

type config interface {
	CategoryHintDistance() int
}

type handler struct {
	name   string
	handle func(ctx context.Context) error
}

type handlerMap map[string]handler

type Shell struct {
	ledger       expenseLedger
	in           io.Reader
	out          io.Writer
	hintDistance int
	handlersMap  handlerMap
	lines        *lineReader
}

func New(ledger expenseLedger, in io.Reader, out io.Writer, cfg config) *Shell {
	s := &Shell{
		ledger:       ledger,
		in:           in,
		out:          out,
		hintDistance: cfg.CategoryHintDistance(),
	}
	s.handlersMap = newMap(s)
	return s
}

func newMap(s *Shell) handlerMap {
	m := make(handlerMap)
	m[addExpenseOption] = handler{"addExpense", s.handleAddExpense}
	m[totalOption] = handler{"showTotal", s.handleTotal}
	m[totalByCategoryOption] = handler{"showTotalByCategory", s.handleTotalByCategory}
	m[trendOption] = handler{"showTrend", s.handleTrend}
	m[extremesOption] = handler{"showExtremes", s.handleExtremes}
	m[exitOption] = handler{"exit", s.handleExit}
	return m
}

// Run shows the menu until the user exits or the input ends, both of which
// return nil. Cancelling ctx stops the loop with ctx.Err().
func (s *Shell) Run(ctx context.Context) error {
	logger.Info("Shell - start")
	defer logger.Info("Shell - end")

	s.lines = newLineReader(s.in)
	defer s.lines.Close()

	s.println(welcomeMessage)
	for {
		s.print(menuMessage)
		choice, err := s.lines.ReadToken(ctx)
		if errors.Is(err, errLineTooLong) {
			s.rejectOption("")
			continue
		}
		if err != nil {
			return s.stop(err)
		}

		option, ok := parseOption(choice)
		if !ok {
			s.rejectOption(choice)
			continue
		}
		s.println("")

		err = s.dispatch(ctx, option)
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		logger.Info("input closed")
		return nil
	}
	return err
}

func parseOption(token string) (string, bool) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return "", false
	}
	return strconv.Itoa(n), true
}

func (s *Shell) rejectOption(choice string) {
	logger.Debug("invalid option", zap.String("choice", choice))
	observeRejected("option")
	s.println(invalidOptionMessage)
}

func (s *Shell) dispatch(ctx context.Context, option string) error {
	h, ok := s.handlersMap[option]
	if !ok {
		s.rejectOption(option)
		return nil
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, h.name)
	defer span.Finish()

	start := time.Now()
	err := h.handle(ctx)
	observeAction(h.name, time.Since(start))

	if err != nil && !errors.Is(err, errExit) {
		ext.Error.Set(span, true)
		return errors.Wrap(err, h.name)
	}
	return err
}

func (s *Shell) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Shell) println(text string) {
	_, _ = io.WriteString(s.out, text+"\n")
}

func (s *Shell) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// prompt prints text and reads the whole answer line.
func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	s.print(text)
	line, err := s.lines.ReadLine(ctx)
	return strings.TrimSpace(line), err
}

// promptToken prints text and reads the first word of the next non-blank line.
func (s *Shell) promptToken(ctx context.Context, text string) (string, error) {
	s.print(text)
	return s.lines.ReadToken(ctx)
}
