package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ IReminderTable = (*RemindersTable)(nil)

var reminderColumns = []any{
	"id", "title", "description", "amount", "due_date", "type",
	"is_completed", "created_at", "updated_at",
}

// RemindersTable provides access to the reminders table.
type RemindersTable struct {
	exec bob.Executor
}

// NewRemindersTable creates a RemindersTable over the given executor.
func NewRemindersTable(exec bob.Executor) RemindersTable {
	return RemindersTable{exec: exec}
}

// FindByID retrieves a reminder by primary key.
func (t *RemindersTable) FindByID(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	q := psql.Select(
		sm.Columns(reminderColumns...),
		sm.From("reminders"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Reminder]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

// Insert creates a new reminder and returns the stored row.
func (t *RemindersTable) Insert(ctx context.Context, create *ReminderCreate) (*Reminder, error) {
	q := psql.Insert(
		im.Into("reminders", "title", "description", "amount", "due_date", "type"),
		im.Values(psql.Arg(
			create.Title,
			create.Description,
			create.Amount,
			create.DueDate,
			string(create.Type),
		)),
		im.Returning("*"),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Reminder]())
}

// Update replaces every mutable field, including the completion flag, and
// refreshes updated_at. Returns ErrNotFound when the id does not exist.
func (t *RemindersTable) Update(ctx context.Context, id uuid.UUID, update *ReminderUpdate) (*Reminder, error) {
	q := psql.Update(
		um.Table("reminders"),
		um.SetCol("title").ToArg(update.Title),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("due_date").ToArg(update.DueDate),
		um.SetCol("type").ToArg(string(update.Type)),
		um.SetCol("is_completed").ToArg(update.IsCompleted),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("*"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Reminder]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

// Delete removes a reminder. Returns ErrNotFound when the id does not exist.
func (t *RemindersTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("reminders"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns reminders matching the filter, ordered by due date ascending
// (soonest first). Nil filter returns all.
func (t *RemindersTable) List(ctx context.Context, filter *ReminderFilter) ([]*Reminder, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(reminderColumns...),
		sm.From("reminders"),
	}
	if filter != nil {
		var whereMods []mods.Where[*dialect.SelectQuery]
		if filter.DueOnOrAfter != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("due_date").GTE(psql.Arg(*filter.DueOnOrAfter))))
		}
		if filter.Completed != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("is_completed").EQ(psql.Arg(*filter.Completed))))
		}
		if len(whereMods) == 1 {
			queryMods = append(queryMods, whereMods[0])
		} else if len(whereMods) > 1 {
			queryMods = append(queryMods, psql.WhereAnd(whereMods...))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("due_date")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Reminder]())
}
