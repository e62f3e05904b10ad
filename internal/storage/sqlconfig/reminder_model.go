package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ReminderType is stored as its literal string value.
type ReminderType string

const (
	ReminderTypePayment ReminderType = "Payment"
	ReminderTypeEvent   ReminderType = "Event"
	ReminderTypeOther   ReminderType = "Other"
)

// Reminder represents a payment or event reminder record.
// Amount is nullable: pure events carry no monetary value.
type Reminder struct {
	ID          uuid.UUID           `db:"id"`
	Title       string              `db:"title"`
	Description string              `db:"description"`
	Amount      decimal.NullDecimal `db:"amount"`
	DueDate     time.Time           `db:"due_date"`
	Type        ReminderType        `db:"type"`
	IsCompleted bool                `db:"is_completed"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}

// ReminderCreate is the input for creating a new reminder.
type ReminderCreate struct {
	Title       string
	Description string
	Amount      decimal.NullDecimal
	DueDate     time.Time
	Type        ReminderType
}

// ReminderUpdate replaces every mutable field of a reminder, including the
// completion flag. ID and CreatedAt are immutable.
type ReminderUpdate struct {
	Title       string
	Description string
	Amount      decimal.NullDecimal
	DueDate     time.Time
	Type        ReminderType
	IsCompleted bool
}

// ReminderFilter specifies filters for listing reminders. Nil fields apply
// no constraint. Results are always ordered by due date ascending.
type ReminderFilter struct {
	DueOnOrAfter *time.Time
	Completed    *bool
}

// IReminderTable defines the interface for reminder storage operations.
//
//go:generate mockery --name IReminderTable --output mock_IReminderTable.go
type IReminderTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Reminder, error)
	Insert(ctx context.Context, create *ReminderCreate) (*Reminder, error)
	Update(ctx context.Context, id uuid.UUID, update *ReminderUpdate) (*Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *ReminderFilter) ([]*Reminder, error)
}
