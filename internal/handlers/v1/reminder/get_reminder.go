package reminder

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// GetReminderInput is the Huma input for fetching a single reminder.
type GetReminderInput struct {
	ID string `path:"id" format:"uuid" doc:"Reminder UUID"`
}

// GetReminderOutput is the Huma output for fetching a single reminder.
type GetReminderOutput struct {
	Body Reminder
}

type reminderGetter interface {
	GetReminder(ctx context.Context, id uuid.UUID) (*service.Reminder, error)
}

// GetReminderHandler handles GET /v1/reminder/{id}.
type GetReminderHandler struct {
	Service reminderGetter
}

// NewGetReminderHandler creates a new GetReminderHandler.
func NewGetReminderHandler(svc reminderGetter) *GetReminderHandler {
	return &GetReminderHandler{Service: svc}
}

// Register registers the get reminder endpoint with the Huma API.
func (h *GetReminderHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-reminder",
		Method:      http.MethodGet,
		Path:        "/v1/reminder/{id}",
		Summary:     "Get reminder",
		Description: "Fetches a single reminder by id.",
		Tags:        []string{"Reminders"},
	}, h.handle)
}

func (h *GetReminderHandler) handle(ctx context.Context, input *GetReminderInput) (*GetReminderOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid reminder id", err)
	}

	rem, err := h.Service.GetReminder(ctx, id)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "reminder not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get reminder", err)
	}

	return &GetReminderOutput{Body: NewReminder(*rem)}, nil
}
