package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateReminder inserts a new reminder. Amount is optional; pure events
// carry no monetary value.
type CreateReminder struct {
	Title       string
	Description string
	Amount      decimal.NullDecimal
	DueDate     time.Time
	Type        sqlconfig.ReminderType

	Result *sqlconfig.Reminder
}

func (a *CreateReminder) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Reminders.Insert(ctx, &sqlconfig.ReminderCreate{
		Title:       a.Title,
		Description: a.Description,
		Amount:      a.Amount,
		DueDate:     a.DueDate,
		Type:        a.Type,
	})
	if err != nil {
		return err
	}

	a.Result = row
	return nil
}
