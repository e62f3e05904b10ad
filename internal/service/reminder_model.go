package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ReminderType classifies a reminder.
type ReminderType string

const (
	ReminderTypePayment ReminderType = "Payment"
	ReminderTypeEvent   ReminderType = "Event"
	ReminderTypeOther   ReminderType = "Other"
)

// ParseReminderType converts a wire value into a ReminderType.
func ParseReminderType(s string) (ReminderType, error) {
	switch ReminderType(s) {
	case ReminderTypePayment, ReminderTypeEvent, ReminderTypeOther:
		return ReminderType(s), nil
	}
	return "", fmt.Errorf("invalid reminder type %q", s)
}

// Reminder represents a reminder in the service layer. Amount is absent for
// pure events.
type Reminder struct {
	ID          uuid.UUID
	Title       string
	Description string
	Amount      decimal.NullDecimal
	DueDate     time.Time
	Type        ReminderType
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReminderFromStorage converts a storage row into the service model.
func ReminderFromStorage(row *sqlconfig.Reminder) Reminder {
	return Reminder{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Amount:      row.Amount,
		DueDate:     row.DueDate,
		Type:        ReminderType(row.Type),
		IsCompleted: row.IsCompleted,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
