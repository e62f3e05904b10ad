package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateTransaction inserts a new ledger transaction. Result carries the
// stored row with its assigned id and timestamps.
type CreateTransaction struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Type        sqlconfig.TransactionType
	Method      sqlconfig.PaymentMethod
	Date        time.Time

	Result *sqlconfig.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Amount:      a.Amount,
		Category:    a.Category,
		Description: a.Description,
		Type:        a.Type,
		Method:      a.Method,
		Date:        a.Date,
	})
	if err != nil {
		return err
	}

	a.Result = row
	return nil
}
