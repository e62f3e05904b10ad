package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// UpdateTransaction replaces every mutable field of an existing transaction.
// Fails with sqlconfig.ErrNotFound when the id does not exist, leaving the
// store unchanged.
type UpdateTransaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Description string
	Type        sqlconfig.TransactionType
	Method      sqlconfig.PaymentMethod
	Date        time.Time

	Result *sqlconfig.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Update(ctx, a.ID, &sqlconfig.TransactionUpdate{
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
