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

// DeleteReminderInput is the Huma input for deleting a reminder.
type DeleteReminderInput struct {
	ID string `path:"id" format:"uuid" doc:"Reminder UUID"`
}

// DeleteReminderResponseBody is the response body for deleting a reminder.
type DeleteReminderResponseBody struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// DeleteReminderOutput is the Huma output for deleting a reminder.
type DeleteReminderOutput struct {
	Body DeleteReminderResponseBody
}

// DeleteReminderHandler handles DELETE /v1/reminder/{id}.
type DeleteReminderHandler struct {
	Operator actionProcessor
}

// NewDeleteReminderHandler creates a new DeleteReminderHandler.
func NewDeleteReminderHandler(op actionProcessor) *DeleteReminderHandler {
	return &DeleteReminderHandler{Operator: op}
}

// Register registers the delete reminder endpoint with the Huma API.
func (h *DeleteReminderHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-reminder",
		Method:      http.MethodDelete,
		Path:        "/v1/reminder/{id}",
		Summary:     "Delete reminder",
		Description: "Permanently removes a reminder.",
		Tags:        []string{"Reminders"},
	}, h.handle)
}

func (h *DeleteReminderHandler) handle(ctx context.Context, input *DeleteReminderInput) (*DeleteReminderOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid reminder id", err)
	}

	if err := h.Operator.Process(ctx, &actions.DeleteReminder{ID: id}); err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "reminder not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete reminder", err)
	}

	return &DeleteReminderOutput{
		Body: DeleteReminderResponseBody{Message: "reminder deleted"},
	}, nil
}
