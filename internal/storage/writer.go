package storage

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
	"github.com/stephenafamo/bob"
)

// Writer bundles the tables bound to a single open transaction. Every
// mutation runs inside one Writer and is committed or rolled back as a unit.
type Writer struct {
	tx           bob.Tx
	Transactions sqlconfig.ITransactionTable
	Reminders    sqlconfig.IReminderTable
}

// Write opens a transaction and returns a Writer over it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	transactions := sqlconfig.NewTransactionsTable(tx)
	reminders := sqlconfig.NewRemindersTable(tx)

	return &Writer{
		tx:           tx,
		Transactions: &transactions,
		Reminders:    &reminders,
	}, nil
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
