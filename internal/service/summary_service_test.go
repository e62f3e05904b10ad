package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func newSummaryTestService(t *testing.T, now time.Time) (*SummaryService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTable}
	svc := NewSummaryService(store)
	svc.now = func() time.Time { return now }
	return svc, mockTable
}

// -- PeriodSummary tests --

func TestPeriodSummary_Week(t *testing.T) {
	now := time.Date(2025, 7, 15, 13, 45, 0, 0, time.UTC)
	svc, mockTable := newSummaryTestService(t, now)

	expectedStart := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	rows := []*sqlconfig.Transaction{
		makeStorageTransaction(sqlconfig.TransactionTypeIncome, sqlconfig.PaymentMethodCash, "1000.00", now),
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodCard, "250.75", now),
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodCash, "49.25", now),
	}

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(expectedStart) && f.EndDate == nil
	})).Return(rows, nil)

	summary, err := svc.PeriodSummary(context.Background(), PeriodWeek)

	assert.NoError(t, err)
	assert.Equal(t, "1000.00", summary.TotalIncome.StringFixed(2))
	assert.Equal(t, "300.00", summary.TotalExpense.StringFixed(2))
	assert.Equal(t, "700.00", summary.NetAmount.StringFixed(2))
	assert.Equal(t, 3, summary.TransactionCount)
}

func TestPeriodSummary_Month(t *testing.T) {
	now := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	svc, mockTable := newSummaryTestService(t, now)

	expectedStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(expectedStart) &&
			f.EndDate != nil && f.EndDate.Equal(expectedEnd)
	})).Return([]*sqlconfig.Transaction{}, nil)

	summary, err := svc.PeriodSummary(context.Background(), PeriodMonth)

	assert.NoError(t, err)
	assert.Equal(t, "0.00", summary.TotalIncome.StringFixed(2))
	assert.Equal(t, "0.00", summary.TotalExpense.StringFixed(2))
	assert.Equal(t, "0.00", summary.NetAmount.StringFixed(2))
	assert.Equal(t, 0, summary.TransactionCount)
}

func TestPeriodSummary_NetCanBeNegative(t *testing.T) {
	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	svc, mockTable := newSummaryTestService(t, now)

	rows := []*sqlconfig.Transaction{
		makeStorageTransaction(sqlconfig.TransactionTypeIncome, sqlconfig.PaymentMethodCash, "100.00", now),
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodCard, "350.00", now),
	}
	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	summary, err := svc.PeriodSummary(context.Background(), PeriodMonth)

	assert.NoError(t, err)
	assert.Equal(t, "-250.00", summary.NetAmount.StringFixed(2))
}

func TestPeriodSummary_InvalidPeriod(t *testing.T) {
	svc, _ := newSummaryTestService(t, time.Now())

	summary, err := svc.PeriodSummary(context.Background(), Period("year"))

	assert.Error(t, err)
	assert.Nil(t, summary)
}

// -- Balance tests --

func TestBalance_Partition(t *testing.T) {
	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	svc, mockTable := newSummaryTestService(t, now)

	rows := []*sqlconfig.Transaction{
		makeStorageTransaction(sqlconfig.TransactionTypeIncome, sqlconfig.PaymentMethodCash, "100.00", now),
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodCard, "40.00", now),
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodUPI, "10.00", now),
		makeStorageTransaction(sqlconfig.TransactionTypeIncome, sqlconfig.PaymentMethodBankTransfer, "30.00", now),
	}
	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	balance, err := svc.Balance(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "80.00", balance.TotalBalance.StringFixed(2))
	assert.Equal(t, "100.00", balance.CashBalance.StringFixed(2))
	assert.Equal(t, "-20.00", balance.CardBalance.StringFixed(2))
}

func TestBalance_EmptyLedger(t *testing.T) {
	svc, mockTable := newSummaryTestService(t, time.Now())

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{}, nil)

	balance, err := svc.Balance(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "0.00", balance.TotalBalance.StringFixed(2))
	assert.Equal(t, "0.00", balance.CashBalance.StringFixed(2))
	assert.Equal(t, "0.00", balance.CardBalance.StringFixed(2))
}

// -- CalendarMonth tests --

func TestCalendarMonth_GroupsByDay(t *testing.T) {
	svc, mockTable := newSummaryTestService(t, time.Now())

	day10 := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	day20 := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	rows := []*sqlconfig.Transaction{
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodCash, "15.00", day20),
		makeStorageTransaction(sqlconfig.TransactionTypeIncome, sqlconfig.PaymentMethodCard, "200.00", day10),
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodCard, "50.00", day10),
	}

	expectedStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(expectedStart) &&
			f.EndDate != nil && f.EndDate.Equal(expectedEnd)
	})).Return(rows, nil)

	days, err := svc.CalendarMonth(context.Background(), 2025, time.July)

	assert.NoError(t, err)
	assert.Len(t, days, 2)

	assert.Equal(t, day10, days[0].Date)
	assert.Equal(t, 2, days[0].TransactionCount)
	assert.Equal(t, "200.00", days[0].Income.StringFixed(2))
	assert.Equal(t, "50.00", days[0].Expense.StringFixed(2))

	assert.Equal(t, day20, days[1].Date)
	assert.Equal(t, 1, days[1].TransactionCount)
	assert.Equal(t, "0.00", days[1].Income.StringFixed(2))
	assert.Equal(t, "15.00", days[1].Expense.StringFixed(2))
}

func TestCalendarMonth_EmptyMonth(t *testing.T) {
	svc, mockTable := newSummaryTestService(t, time.Now())

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{}, nil)

	days, err := svc.CalendarMonth(context.Background(), 2025, time.January)

	assert.NoError(t, err)
	assert.Empty(t, days)
}

// -- DateTransactions tests --

func TestDateTransactions_FiltersToSingleDay(t *testing.T) {
	svc, mockTable := newSummaryTestService(t, time.Now())

	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	rows := []*sqlconfig.Transaction{
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodCash, "12.00", day),
	}

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Date != nil && f.Date.Equal(day)
	})).Return(rows, nil)

	txs, err := svc.DateTransactions(context.Background(), time.Date(2025, 7, 10, 18, 30, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, rows[0].ID, txs[0].ID)
}

// -- RecentTransactions tests --

func TestRecentTransactions_DefaultLimit(t *testing.T) {
	svc, mockTable := newSummaryTestService(t, time.Now())

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 5
	})).Return([]*sqlconfig.Transaction{}, nil)

	txs, err := svc.RecentTransactions(context.Background(), 0)

	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func TestRecentTransactions_ExplicitLimit(t *testing.T) {
	svc, mockTable := newSummaryTestService(t, time.Now())

	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	rows := []*sqlconfig.Transaction{
		makeStorageTransaction(sqlconfig.TransactionTypeIncome, sqlconfig.PaymentMethodCash, "10.00", now),
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodCard, "20.00", now),
	}
	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 2
	})).Return(rows, nil)

	txs, err := svc.RecentTransactions(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestRecentTransactions_StorageError(t *testing.T) {
	svc, mockTable := newSummaryTestService(t, time.Now())

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("list failed"))

	txs, err := svc.RecentTransactions(context.Background(), 5)

	assert.Error(t, err)
	assert.Nil(t, txs)
}
