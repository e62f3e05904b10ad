package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Sentinel filter values meaning "no constraint".
const (
	allTypes   = "All Types"
	allMethods = "All Methods"
)

// actionProcessor enqueues a mutation and blocks until it completes.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Amount      string `json:"amount" doc:"Decimal amount with two fraction digits"`
	Category    string `json:"category" doc:"Category label"`
	Description string `json:"description,omitempty" doc:"Optional free text"`
	Type        string `json:"type" doc:"Income or Expense"`
	Method      string `json:"method" doc:"Payment method"`
	Date        string `json:"date" doc:"Transaction date (YYYY-MM-DD)"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation timestamp"`
	UpdatedAt   string `json:"updatedAt" doc:"RFC3339 last update timestamp"`
}

// NewTransaction converts a service transaction into the API model. Monetary
// values are formatted to two fraction digits here, at the boundary.
func NewTransaction(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Amount:      tx.Amount.StringFixed(2),
		Category:    tx.Category,
		Description: tx.Description,
		Type:        string(tx.Type),
		Method:      string(tx.Method),
		Date:        tx.Date.Format(DateLayout),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tx.UpdatedAt.Format(time.RFC3339),
	}
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return NewTransaction(service.TransactionFromStorage(row))
}
