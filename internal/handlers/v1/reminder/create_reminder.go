package reminder

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateReminderInput is the Huma input for creating a reminder.
type CreateReminderInput struct {
	Body ReminderBody
}

// CreateReminderOutput is the Huma output for creating a reminder.
type CreateReminderOutput struct {
	Status int
	Body   Reminder
}

// CreateReminderHandler handles POST /v1/reminder.
type CreateReminderHandler struct {
	Operator actionProcessor
}

// NewCreateReminderHandler creates a new CreateReminderHandler.
func NewCreateReminderHandler(op actionProcessor) *CreateReminderHandler {
	return &CreateReminderHandler{Operator: op}
}

// Register registers the create reminder endpoint with the Huma API.
func (h *CreateReminderHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-reminder",
		Method:        http.MethodPost,
		Path:          "/v1/reminder",
		Summary:       "Create reminder",
		Description:   "Creates a new reminder. New reminders always start incomplete.",
		Tags:          []string{"Reminders"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateReminderHandler) handle(ctx context.Context, input *CreateReminderInput) (*CreateReminderOutput, error) {
	amount, remType, dueDate, err := parseReminderBody(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateReminder{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Amount:      amount,
		DueDate:     dueDate,
		Type:        sqlconfig.ReminderType(remType),
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create reminder", err)
	}

	return &CreateReminderOutput{
		Status: http.StatusCreated,
		Body:   reminderFromStorage(action.Result),
	}, nil
}
