package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period is a relative time window used to scope a summary.
type Period string

const (
	// PeriodWeek covers the trailing 7 days inclusive of today.
	PeriodWeek Period = "week"
	// PeriodMonth covers the current calendar month, not a rolling 30 days.
	PeriodMonth Period = "month"
)

// ParsePeriod converts a wire value into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period %q", s)
}

// PeriodSummary is the income/expense roll-up for one period. All fields are
// zero-valued when no transactions fall in scope.
type PeriodSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	NetAmount        decimal.Decimal
	TransactionCount int
}

// Balance is the derived net position over the whole ledger, partitioned
// three ways: total, cash, and non-cash. CardBalance covers every electronic
// method (Card, UPI, Bank Transfer), not literally "Card" alone.
type Balance struct {
	TotalBalance decimal.Decimal
	CashBalance  decimal.Decimal
	CardBalance  decimal.Decimal
}

// CalendarDay is one day's activity in a calendar month view. Days with no
// transactions are omitted from the sequence entirely.
type CalendarDay struct {
	Date             time.Time
	TransactionCount int
	Income           decimal.Decimal
	Expense          decimal.Decimal
}
