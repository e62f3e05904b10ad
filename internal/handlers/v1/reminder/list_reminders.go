package reminder

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListRemindersInput is the Huma input for listing reminders.
type ListRemindersInput struct {
	Upcoming bool `query:"upcoming" doc:"Only reminders due today or later that are not completed"`
}

// ListRemindersResponseBody is the response body for listing reminders.
type ListRemindersResponseBody struct {
	Reminders []Reminder `json:"reminders" doc:"Reminders ordered by due date ascending"`
}

// ListRemindersOutput is the Huma output for listing reminders.
type ListRemindersOutput struct {
	Body ListRemindersResponseBody
}

type reminderLister interface {
	ListReminders(ctx context.Context, upcomingOnly bool) ([]service.Reminder, error)
}

// ListRemindersHandler handles GET /v1/reminders.
type ListRemindersHandler struct {
	Service reminderLister
}

// NewListRemindersHandler creates a new ListRemindersHandler.
func NewListRemindersHandler(svc reminderLister) *ListRemindersHandler {
	return &ListRemindersHandler{Service: svc}
}

// Register registers the list reminders endpoint with the Huma API.
func (h *ListRemindersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-reminders",
		Method:      http.MethodGet,
		Path:        "/v1/reminders",
		Summary:     "List reminders",
		Description: "Lists reminders by due date, optionally restricted to upcoming ones.",
		Tags:        []string{"Reminders"},
	}, h.handle)
}

func (h *ListRemindersHandler) handle(ctx context.Context, input *ListRemindersInput) (*ListRemindersOutput, error) {
	rems, err := h.Service.ListReminders(ctx, input.Upcoming)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list reminders", err)
	}

	body := ListRemindersResponseBody{Reminders: make([]Reminder, 0, len(rems))}
	for _, rem := range rems {
		body.Reminders = append(body.Reminders, NewReminder(rem))
	}

	return &ListRemindersOutput{Body: body}, nil
}
