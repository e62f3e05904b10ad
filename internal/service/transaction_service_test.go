package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func newTransactionTestService(t *testing.T) (*TransactionService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTable}
	svc := NewTransactionService(store)
	return svc, mockTable
}

func makeStorageTransaction(txType sqlconfig.TransactionType, method sqlconfig.PaymentMethod, amount string, date time.Time) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		Amount:    decimal.RequireFromString(amount),
		Category:  "Groceries",
		Type:      txType,
		Method:    method,
		Date:      date,
		CreatedAt: date,
		UpdatedAt: date,
	}
}

// -- ListTransactions tests --

func TestListTransactions_NoFilter(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	rows := []*sqlconfig.Transaction{
		makeStorageTransaction(sqlconfig.TransactionTypeExpense, sqlconfig.PaymentMethodCash, "25.50", date),
		makeStorageTransaction(sqlconfig.TransactionTypeIncome, sqlconfig.PaymentMethodCard, "1000.00", date),
	}

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Type == nil && f.Method == nil && f.StartDate == nil && f.EndDate == nil
	})).Return(rows, nil)

	txs, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, rows[0].ID, txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("25.50")))
	assert.Equal(t, TransactionTypeExpense, txs[0].Type)
	assert.Equal(t, PaymentMethodCash, txs[0].Method)
}

func TestListTransactions_FilterConversion(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	txType := TransactionTypeExpense
	method := PaymentMethodUPI
	startDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Type != nil && *f.Type == sqlconfig.TransactionTypeExpense &&
			f.Method != nil && *f.Method == sqlconfig.PaymentMethodUPI &&
			f.StartDate != nil && f.StartDate.Equal(startDate) &&
			f.EndDate != nil && f.EndDate.Equal(endDate)
	})).Return([]*sqlconfig.Transaction{}, nil)

	txs, err := svc.ListTransactions(context.Background(), &TransactionFilter{
		Type:      &txType,
		Method:    &method,
		StartDate: &startDate,
		EndDate:   &endDate,
	})

	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("list failed"))

	txs, err := svc.ListTransactions(context.Background(), nil)

	assert.Error(t, err)
	assert.Equal(t, "list failed", err.Error())
	assert.Nil(t, txs)
}

// -- GetTransaction tests --

func TestGetTransaction_Success(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	row := makeStorageTransaction(sqlconfig.TransactionTypeIncome, sqlconfig.PaymentMethodBankTransfer, "500.00", date)

	mockTable.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)

	tx, err := svc.GetTransaction(context.Background(), row.ID)

	assert.NoError(t, err)
	assert.NotNil(t, tx)
	assert.Equal(t, row.ID, tx.ID)
	assert.True(t, tx.Amount.Equal(row.Amount))
	assert.Equal(t, TransactionTypeIncome, tx.Type)
	assert.Equal(t, PaymentMethodBankTransfer, tx.Method)
	assert.Equal(t, row.Date, tx.Date)
}

func TestGetTransaction_NotFound(t *testing.T) {
	svc, mockTable := newTransactionTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	tx, err := svc.GetTransaction(context.Background(), id)

	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
	assert.Nil(t, tx)
}
