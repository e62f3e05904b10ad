package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Type      string `query:"type" doc:"Income, Expense, or All Types"`
	Method    string `query:"method" doc:"Payment method, or All Methods"`
	StartDate string `query:"startDate" doc:"Inclusive lower date bound (YYYY-MM-DD)"`
	EndDate   string `query:"endDate" doc:"Inclusive upper date bound (YYYY-MM-DD)"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, filter *service.TransactionFilter) ([]service.Transaction, error)
}

// parseListTransactionsInput converts query parameters into a service filter.
// Empty strings and the "All Types"/"All Methods" sentinels leave the
// corresponding field unconstrained.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionFilter, error) {
	filter := &service.TransactionFilter{}

	if input.Type != "" && input.Type != allTypes {
		txType, err := service.ParseTransactionType(input.Type)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		filter.Type = &txType
	}

	if input.Method != "" && input.Method != allMethods {
		method, err := service.ParsePaymentMethod(input.Method)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid method", err)
		}
		filter.Method = &method
	}

	if input.StartDate != "" {
		startDate, err := time.Parse(DateLayout, input.StartDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		filter.StartDate = &startDate
	}

	if input.EndDate != "" {
		endDate, err := time.Parse(DateLayout, input.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		filter.EndDate = &endDate
	}

	return filter, nil
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	Service transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{Service: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Lists transactions, newest first, optionally filtered by type, method, and date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("ListTransactions")
	txs, err := h.Service.ListTransactions(ctx, filter)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}
	logData.AddData("transactionCount", len(txs))

	body := ListTransactionsResponseBody{Transactions: make([]Transaction, 0, len(txs))}
	for _, tx := range txs {
		body.Transactions = append(body.Transactions, NewTransaction(tx))
	}

	return &ListTransactionsOutput{Body: body}, nil
}
