package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// BalanceResponseBody is the response body for the balance view.
type BalanceResponseBody struct {
	TotalBalance string `json:"totalBalance" doc:"Net balance across all payment methods"`
	CashBalance  string `json:"cashBalance" doc:"Net balance of cash transactions"`
	CardBalance  string `json:"cardBalance" doc:"Net balance of card, UPI, and bank transfer transactions"`
}

// BalanceOutput is the Huma output for the balance view.
type BalanceOutput struct {
	Body BalanceResponseBody
}

type balanceReader interface {
	Balance(ctx context.Context) (*service.Balance, error)
}

// BalanceHandler handles GET /v1/dashboard/balance.
type BalanceHandler struct {
	Service balanceReader
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(svc balanceReader) *BalanceHandler {
	return &BalanceHandler{Service: svc}
}

// Register registers the balance endpoint with the Huma API.
func (h *BalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-balance",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/balance",
		Summary:     "Balance partition",
		Description: "Net balance over the whole ledger, split into cash and non-cash.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *BalanceHandler) handle(ctx context.Context, _ *struct{}) (*BalanceOutput, error) {
	balance, err := h.Service.Balance(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute balance", err)
	}

	return &BalanceOutput{
		Body: BalanceResponseBody{
			TotalBalance: balance.TotalBalance.StringFixed(2),
			CashBalance:  balance.CashBalance.StringFixed(2),
			CardBalance:  balance.CardBalance.StringFixed(2),
		},
	}, nil
}
