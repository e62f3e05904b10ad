package calendar

import (
	"context"
	"encoding/json"
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

// mockDateReader is a mock for dateReader.
type mockDateReader struct {
	mock.Mock
}

func (m *mockDateReader) DateTransactions(ctx context.Context, date time.Time) ([]service.Transaction, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func newDateTestAPI(t *testing.T, svc dateReader) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDateHandler(svc).Register(api)
	return api
}

func TestHTTP_Date_Success(t *testing.T) {
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	txs := []service.Transaction{{
		ID:        uuid.Must(uuid.NewV4()),
		Amount:    decimal.RequireFromString("12.00"),
		Category:  "Food",
		Type:      service.TransactionTypeExpense,
		Method:    service.PaymentMethodCash,
		Date:      day,
		CreatedAt: day,
		UpdatedAt: day,
	}}

	mockSvc := new(mockDateReader)
	mockSvc.On("DateTransactions", mock.Anything, day).Return(txs, nil)

	resp := newDateTestAPI(t, mockSvc).Get("/v1/calendar/date/2025-07-10")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DateResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-07-10", body.Date)
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, "12.00", body.Transactions[0].Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Date_EmptyDay(t *testing.T) {
	day := time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockDateReader)
	mockSvc.On("DateTransactions", mock.Anything, day).Return([]service.Transaction{}, nil)

	resp := newDateTestAPI(t, mockSvc).Get("/v1/calendar/date/2025-07-11")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DateResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Date_BadDate(t *testing.T) {
	mockSvc := new(mockDateReader)

	resp := newDateTestAPI(t, mockSvc).Get("/v1/calendar/date/not-a-date")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "DateTransactions")
}
