package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionService builds filtered transaction listings. It holds no state
// between calls; every read goes straight to the store.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns transactions matching the filter, ordered by date
// descending with the most recently entered same-day transaction first. An
// empty result is valid, not an error.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionFilter) ([]Transaction, error) {
	storageFilter := &sqlconfig.TransactionFilter{}
	if filter != nil {
		if filter.Type != nil {
			t := transactionTypeToStorage(*filter.Type)
			storageFilter.Type = &t
		}
		if filter.Method != nil {
			m := paymentMethodToStorage(*filter.Method)
			storageFilter.Method = &m
		}
		storageFilter.StartDate = filter.StartDate
		storageFilter.EndDate = filter.EndDate
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	return transactionsFromStorage(rows), nil
}

// GetTransaction retrieves a transaction by ID. Returns
// sqlconfig.ErrNotFound when no row matches.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := TransactionFromStorage(row)
	return &converted, nil
}
