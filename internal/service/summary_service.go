package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const defaultRecentLimit = 5

// SummaryService computes derived views over the ledger. Every view is
// recomputed in full on each call; nothing is cached, so a read immediately
// following a write observes the write. All monetary accumulation happens in
// decimal at full precision; formatting to two fraction digits is left to
// the API boundary.
type SummaryService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(store *storage.Storage) *SummaryService {
	return &SummaryService{
		storage: store,
		now:     time.Now,
	}
}

// dateOnly strips the time component, keeping the calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PeriodSummary returns income/expense totals for the given period.
// "week" takes transactions dated within the trailing 7 days with no upper
// bound; "month" takes the current calendar month.
func (s *SummaryService) PeriodSummary(ctx context.Context, period Period) (*PeriodSummary, error) {
	today := dateOnly(s.now())

	filter := &sqlconfig.TransactionFilter{}
	switch period {
	case PeriodWeek:
		start := today.AddDate(0, 0, -7)
		filter.StartDate = &start
	case PeriodMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		filter.StartDate = &start
		filter.EndDate = &end
	default:
		_, err := ParsePeriod(string(period))
		return nil, err
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &PeriodSummary{
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		TransactionCount: len(rows),
	}
	for _, row := range rows {
		switch row.Type {
		case sqlconfig.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(row.Amount)
		case sqlconfig.TransactionTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(row.Amount)
		}
	}
	summary.NetAmount = summary.TotalIncome.Sub(summary.TotalExpense)

	return summary, nil
}

// Balance computes the three-way balance partition over all transactions,
// with no date scoping. Zero values are returned for an empty ledger.
func (s *SummaryService) Balance(ctx context.Context) (*Balance, error) {
	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	balance := &Balance{
		TotalBalance: decimal.Zero,
		CashBalance:  decimal.Zero,
		CardBalance:  decimal.Zero,
	}
	for _, row := range rows {
		signed := row.Amount
		if row.Type == sqlconfig.TransactionTypeExpense {
			signed = signed.Neg()
		}

		balance.TotalBalance = balance.TotalBalance.Add(signed)
		switch row.Method {
		case sqlconfig.PaymentMethodCash:
			balance.CashBalance = balance.CashBalance.Add(signed)
		case sqlconfig.PaymentMethodCard, sqlconfig.PaymentMethodUPI, sqlconfig.PaymentMethodBankTransfer:
			balance.CardBalance = balance.CardBalance.Add(signed)
		}
	}

	return balance, nil
}

// CalendarMonth returns per-day counts and income/expense sums for the given
// month, ascending by date. Days with no transactions are omitted.
func (s *SummaryService) CalendarMonth(ctx context.Context, year int, month time.Month) ([]CalendarDay, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]*CalendarDay)
	for _, row := range rows {
		day := dateOnly(row.Date)
		entry, ok := byDay[day]
		if !ok {
			entry = &CalendarDay{
				Date:    day,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			byDay[day] = entry
		}
		entry.TransactionCount++
		switch row.Type {
		case sqlconfig.TransactionTypeIncome:
			entry.Income = entry.Income.Add(row.Amount)
		case sqlconfig.TransactionTypeExpense:
			entry.Expense = entry.Expense.Add(row.Amount)
		}
	}

	days := make([]CalendarDay, 0, len(byDay))
	for _, entry := range byDay {
		days = append(days, *entry)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days, nil
}

// DateTransactions returns all transactions on the given date, most recently
// entered first.
func (s *SummaryService) DateTransactions(ctx context.Context, date time.Time) ([]Transaction, error) {
	day := dateOnly(date)
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{Date: &day})
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// RecentTransactions returns the latest transactions by date then creation
// time. A non-positive limit falls back to the default of 5.
func (s *SummaryService) RecentTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{Limit: limit})
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}
