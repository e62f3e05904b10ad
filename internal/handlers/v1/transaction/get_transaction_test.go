package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// mockTransactionGetter is a mock for transactionGetter.
type mockTransactionGetter struct {
	mock.Mock
}

func (m *mockTransactionGetter) GetTransaction(ctx context.Context, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func newGetTestAPI(t *testing.T, svc transactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTransaction_Success(t *testing.T) {
	tx := makeServiceTransaction("42.00")

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, tx.ID).Return(&tx, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/" + tx.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, tx.ID.String(), body.ID)
	assert.Equal(t, "42.00", body.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_BadID(t *testing.T) {
	mockSvc := new(mockTransactionGetter)

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/not-a-uuid")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetTransaction")
}

func TestHTTP_GetTransaction_ServiceError(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, id).Return(nil, errors.New("database unavailable"))

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/" + id.String())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
