package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockReminderLister is a mock for reminderLister.
type mockReminderLister struct {
	mock.Mock
}

func (m *mockReminderLister) ListReminders(ctx context.Context, upcomingOnly bool) ([]service.Reminder, error) {
	args := m.Called(ctx, upcomingOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Reminder), args.Error(1)
}

func newListTestAPI(t *testing.T, svc reminderLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListRemindersHandler(svc).Register(api)
	return api
}

func makeServiceReminder(title string, completed bool) service.Reminder {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	return service.Reminder{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       title,
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString("99.00")),
		DueDate:     time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Type:        service.ReminderTypePayment,
		IsCompleted: completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestHTTP_ListReminders_All(t *testing.T) {
	mockSvc := new(mockReminderLister)
	mockSvc.On("ListReminders", mock.Anything, false).Return([]service.Reminder{
		makeServiceReminder("Rent", true),
		makeServiceReminder("Internet", false),
	}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/reminders")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListRemindersResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Reminders, 2)
	assert.Equal(t, "Rent", body.Reminders[0].Title)
	assert.Equal(t, "99.00", body.Reminders[0].Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListReminders_Upcoming(t *testing.T) {
	mockSvc := new(mockReminderLister)
	mockSvc.On("ListReminders", mock.Anything, true).Return([]service.Reminder{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/reminders?upcoming=true")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListRemindersResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Reminders)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListReminders_ServiceError(t *testing.T) {
	mockSvc := new(mockReminderLister)
	mockSvc.On("ListReminders", mock.Anything, false).
		Return(nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/reminders")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
