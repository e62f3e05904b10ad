package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteTransaction removes a transaction. Fails with sqlconfig.ErrNotFound
// when the id does not exist.
type DeleteTransaction struct {
	ID uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, a.ID)
}
