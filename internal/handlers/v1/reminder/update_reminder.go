package reminder

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// UpdateReminderInput is the Huma input for replacing a reminder.
type UpdateReminderInput struct {
	ID   string `path:"id" format:"uuid" doc:"Reminder UUID"`
	Body ReminderBody
}

// UpdateReminderOutput is the Huma output for replacing a reminder.
type UpdateReminderOutput struct {
	Body Reminder
}

// UpdateReminderHandler handles PUT /v1/reminder/{id}.
type UpdateReminderHandler struct {
	Operator actionProcessor
}

// NewUpdateReminderHandler creates a new UpdateReminderHandler.
func NewUpdateReminderHandler(op actionProcessor) *UpdateReminderHandler {
	return &UpdateReminderHandler{Operator: op}
}

// Register registers the update reminder endpoint with the Huma API.
func (h *UpdateReminderHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-reminder",
		Method:      http.MethodPut,
		Path:        "/v1/reminder/{id}",
		Summary:     "Update reminder",
		Description: "Replaces every mutable field of a reminder, including the completion flag.",
		Tags:        []string{"Reminders"},
	}, h.handle)
}

func (h *UpdateReminderHandler) handle(ctx context.Context, input *UpdateReminderInput) (*UpdateReminderOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid reminder id", err)
	}

	amount, remType, dueDate, err := parseReminderBody(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateReminder{
		ID:          id,
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Amount:      amount,
		DueDate:     dueDate,
		Type:        sqlconfig.ReminderType(remType),
		IsCompleted: input.Body.IsCompleted,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "reminder not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update reminder", err)
	}

	return &UpdateReminderOutput{Body: reminderFromStorage(action.Result)}, nil
}
