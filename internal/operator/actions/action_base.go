package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a single mutation against the ledger store. Perform runs inside
// a transaction owned by the operator; it must not commit or roll back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
