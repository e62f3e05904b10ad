package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// RecentInput is the Huma input for the recent transactions view.
type RecentInput struct {
	Limit int `query:"limit" minimum:"1" maximum:"100" doc:"Maximum rows to return, defaults to 5"`
}

// RecentResponseBody is the response body for the recent transactions view.
type RecentResponseBody struct {
	Transactions []transaction.Transaction `json:"transactions" doc:"Latest transactions, newest first"`
}

// RecentOutput is the Huma output for the recent transactions view.
type RecentOutput struct {
	Body RecentResponseBody
}

type recentReader interface {
	RecentTransactions(ctx context.Context, limit int) ([]service.Transaction, error)
}

// RecentHandler handles GET /v1/dashboard/recent.
type RecentHandler struct {
	Service recentReader
}

// NewRecentHandler creates a new RecentHandler.
func NewRecentHandler(svc recentReader) *RecentHandler {
	return &RecentHandler{Service: svc}
}

// Register registers the recent transactions endpoint with the Huma API.
func (h *RecentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-recent",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/recent",
		Summary:     "Recent transactions",
		Description: "The latest transactions by date, then by creation time.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *RecentHandler) handle(ctx context.Context, input *RecentInput) (*RecentOutput, error) {
	txs, err := h.Service.RecentTransactions(ctx, input.Limit)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list recent transactions", err)
	}

	body := RecentResponseBody{Transactions: make([]transaction.Transaction, 0, len(txs))}
	for _, tx := range txs {
		body.Transactions = append(body.Transactions, transaction.NewTransaction(tx))
	}

	return &RecentOutput{Body: body}, nil
}
