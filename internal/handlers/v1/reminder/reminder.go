package reminder

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const dateLayout = "2006-01-02"

// actionProcessor enqueues a mutation and blocks until it completes.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Reminder is the API response model for a reminder.
type Reminder struct {
	ID          string `json:"id" doc:"Reminder UUID"`
	Title       string `json:"title" doc:"Short title"`
	Description string `json:"description,omitempty" doc:"Optional free text"`
	Amount      string `json:"amount,omitempty" doc:"Decimal amount, absent for pure events"`
	DueDate     string `json:"dueDate" doc:"Due date (YYYY-MM-DD)"`
	Type        string `json:"type" doc:"Payment, Event, or Other"`
	IsCompleted bool   `json:"isCompleted" doc:"Whether the reminder is done"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation timestamp"`
	UpdatedAt   string `json:"updatedAt" doc:"RFC3339 last update timestamp"`
}

// NewReminder converts a service reminder into the API model.
func NewReminder(rem service.Reminder) Reminder {
	out := Reminder{
		ID:          rem.ID.String(),
		Title:       rem.Title,
		Description: rem.Description,
		DueDate:     rem.DueDate.Format(dateLayout),
		Type:        string(rem.Type),
		IsCompleted: rem.IsCompleted,
		CreatedAt:   rem.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   rem.UpdatedAt.Format(time.RFC3339),
	}
	if rem.Amount.Valid {
		out.Amount = rem.Amount.Decimal.StringFixed(2)
	}
	return out
}

func reminderFromStorage(row *sqlconfig.Reminder) Reminder {
	return NewReminder(service.ReminderFromStorage(row))
}

// ReminderBody is the request body for creating or updating a reminder.
// IsCompleted is ignored on create.
type ReminderBody struct {
	Title       string `json:"title" required:"true" minLength:"1" doc:"Short title"`
	Description string `json:"description,omitempty" doc:"Optional free text"`
	Amount      string `json:"amount,omitempty" doc:"Optional positive decimal amount"`
	DueDate     string `json:"dueDate" required:"true" doc:"Due date (YYYY-MM-DD)"`
	Type        string `json:"type" required:"true" enum:"Payment,Event,Other" doc:"Reminder type"`
	IsCompleted bool   `json:"isCompleted,omitempty" doc:"Completion flag, only honored on update"`
}

// parseReminderBody validates the shared body fields. An empty amount yields
// an invalid NullDecimal.
func parseReminderBody(body ReminderBody) (amount decimal.NullDecimal, remType service.ReminderType, dueDate time.Time, err error) {
	if body.Amount != "" {
		parsed, parseErr := decimal.NewFromString(body.Amount)
		if parseErr != nil {
			return amount, remType, dueDate, huma.NewError(http.StatusBadRequest, "invalid amount", parseErr)
		}
		if !parsed.IsPositive() {
			return amount, remType, dueDate, huma.NewError(http.StatusBadRequest, "amount must be positive")
		}
		amount = decimal.NewNullDecimal(parsed)
	}

	remType, err = service.ParseReminderType(body.Type)
	if err != nil {
		return amount, remType, dueDate, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	dueDate, err = time.Parse(dateLayout, body.DueDate)
	if err != nil {
		return amount, remType, dueDate, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
	}

	return amount, remType, dueDate, nil
}
