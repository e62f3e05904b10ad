package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// UpdateReminder replaces every mutable field of a reminder, including the
// completion flag. Fails with sqlconfig.ErrNotFound when the id does not
// exist.
type UpdateReminder struct {
	ID          uuid.UUID
	Title       string
	Description string
	Amount      decimal.NullDecimal
	DueDate     time.Time
	Type        sqlconfig.ReminderType
	IsCompleted bool

	Result *sqlconfig.Reminder
}

func (a *UpdateReminder) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Reminders.Update(ctx, a.ID, &sqlconfig.ReminderUpdate{
		Title:       a.Title,
		Description: a.Description,
		Amount:      a.Amount,
		DueDate:     a.DueDate,
		Type:        a.Type,
		IsCompleted: a.IsCompleted,
	})
	if err != nil {
		return err
	}

	a.Result = row
	return nil
}
