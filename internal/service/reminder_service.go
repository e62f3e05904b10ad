package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ReminderService handles the read side of the reminder lifecycle.
type ReminderService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewReminderService creates a new ReminderService.
func NewReminderService(store *storage.Storage) *ReminderService {
	return &ReminderService{
		storage: store,
		now:     time.Now,
	}
}

// ListReminders returns reminders ordered by due date ascending. With
// upcomingOnly set, only reminders due today or later that are not yet
// completed are returned.
func (s *ReminderService) ListReminders(ctx context.Context, upcomingOnly bool) ([]Reminder, error) {
	filter := &sqlconfig.ReminderFilter{}
	if upcomingOnly {
		today := dateOnly(s.now())
		completed := false
		filter.DueOnOrAfter = &today
		filter.Completed = &completed
	}

	rows, err := s.storage.Reminders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	converted := make([]Reminder, len(rows))
	for i, row := range rows {
		converted[i] = ReminderFromStorage(row)
	}
	return converted, nil
}

// GetReminder retrieves a reminder by ID. Returns sqlconfig.ErrNotFound when
// no row matches.
func (s *ReminderService) GetReminder(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	row, err := s.storage.Reminders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := ReminderFromStorage(row)
	return &converted, nil
}
