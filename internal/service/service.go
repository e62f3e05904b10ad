package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds the read-side engines. Mutations go through the operator.
type Service struct {
	Transaction *TransactionService
	Summary     *SummaryService
	Reminder    *ReminderService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Summary:     NewSummaryService(store),
		Reminder:    NewReminderService(store),
	}
}
