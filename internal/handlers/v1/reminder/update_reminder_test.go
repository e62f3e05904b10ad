package reminder

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func newUpdateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateReminderHandler(op).Register(api)
	return api
}

func TestHTTP_UpdateReminder_MarkCompleted(t *testing.T) {
	remID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		update, ok := a.(*actions.UpdateReminder)
		return ok && update.ID == remID && update.IsCompleted
	})).Run(func(args mock.Arguments) {
		row := makeStoredReminder(remID)
		row.IsCompleted = true
		args.Get(1).(*actions.UpdateReminder).Result = row
	}).Return(nil)

	resp := newUpdateTestAPI(t, mockOp).Put("/v1/reminder/"+remID.String(), ReminderBody{
		Title:       "Rent",
		Amount:      "1200.00",
		DueDate:     "2025-08-01",
		Type:        "Payment",
		IsCompleted: true,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Reminder
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, remID.String(), body.ID)
	assert.True(t, body.IsCompleted)
	mockOp.AssertExpectations(t)
}

func TestHTTP_UpdateReminder_NotFound(t *testing.T) {
	remID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(sqlconfig.ErrNotFound)

	resp := newUpdateTestAPI(t, mockOp).Put("/v1/reminder/"+remID.String(), ReminderBody{
		Title:   "Rent",
		DueDate: "2025-08-01",
		Type:    "Payment",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_UpdateReminder_BadDueDate(t *testing.T) {
	remID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)

	resp := newUpdateTestAPI(t, mockOp).Put("/v1/reminder/"+remID.String(), ReminderBody{
		Title:   "Rent",
		DueDate: "soon",
		Type:    "Payment",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
