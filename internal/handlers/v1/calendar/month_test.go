package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockMonthReader is a mock for monthReader.
type mockMonthReader struct {
	mock.Mock
}

func (m *mockMonthReader) CalendarMonth(ctx context.Context, year int, month time.Month) ([]service.CalendarDay, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CalendarDay), args.Error(1)
}

func newMonthTestAPI(t *testing.T, svc monthReader) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewMonthHandler(svc).Register(api)
	return api
}

func TestHTTP_Month_Success(t *testing.T) {
	mockSvc := new(mockMonthReader)
	mockSvc.On("CalendarMonth", mock.Anything, 2025, time.July).Return([]service.CalendarDay{
		{
			Date:             time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			TransactionCount: 2,
			Income:           decimal.RequireFromString("200.00"),
			Expense:          decimal.RequireFromString("50.00"),
		},
	}, nil)

	resp := newMonthTestAPI(t, mockSvc).Get("/v1/calendar/month/2025/7")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Days, 1)
	assert.Equal(t, "2025-07-10", body.Days[0].Date)
	assert.Equal(t, 2, body.Days[0].TransactionCount)
	assert.Equal(t, "200.00", body.Days[0].Income)
	assert.Equal(t, "50.00", body.Days[0].Expense)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Month_EmptyMonth(t *testing.T) {
	mockSvc := new(mockMonthReader)
	mockSvc.On("CalendarMonth", mock.Anything, 2025, time.January).Return([]service.CalendarDay{}, nil)

	resp := newMonthTestAPI(t, mockSvc).Get("/v1/calendar/month/2025/1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Days)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Month_MonthOutOfRange(t *testing.T) {
	mockSvc := new(mockMonthReader)

	// maximum:"12" violation.
	resp := newMonthTestAPI(t, mockSvc).Get("/v1/calendar/month/2025/13")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CalendarMonth")
}

func TestHTTP_Month_ServiceError(t *testing.T) {
	mockSvc := new(mockMonthReader)
	mockSvc.On("CalendarMonth", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newMonthTestAPI(t, mockSvc).Get("/v1/calendar/month/2025/7")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
