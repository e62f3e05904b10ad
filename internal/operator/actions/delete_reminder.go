package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteReminder removes a reminder. Fails with sqlconfig.ErrNotFound when
// the id does not exist.
type DeleteReminder struct {
	ID uuid.UUID
}

func (a *DeleteReminder) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Reminders.Delete(ctx, a.ID)
}
