package calendar

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// DateInput is the Huma input for the single-date view.
type DateInput struct {
	Date string `path:"date" doc:"Day to fetch (YYYY-MM-DD)"`
}

// DateResponseBody is the response body for the single-date view.
type DateResponseBody struct {
	Date         string                    `json:"date" doc:"Day the listing covers"`
	Transactions []transaction.Transaction `json:"transactions" doc:"Transactions on this day, most recently entered first"`
}

// DateOutput is the Huma output for the single-date view.
type DateOutput struct {
	Body DateResponseBody
}

type dateReader interface {
	DateTransactions(ctx context.Context, date time.Time) ([]service.Transaction, error)
}

// DateHandler handles GET /v1/calendar/date/{date}.
type DateHandler struct {
	Service dateReader
}

// NewDateHandler creates a new DateHandler.
func NewDateHandler(svc dateReader) *DateHandler {
	return &DateHandler{Service: svc}
}

// Register registers the single-date endpoint with the Huma API.
func (h *DateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "calendar-date",
		Method:      http.MethodGet,
		Path:        "/v1/calendar/date/{date}",
		Summary:     "Transactions on a date",
		Description: "All transactions on one calendar day.",
		Tags:        []string{"Calendar"},
	}, h.handle)
}

func (h *DateHandler) handle(ctx context.Context, input *DateInput) (*DateOutput, error) {
	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	txs, err := h.Service.DateTransactions(ctx, date)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	body := DateResponseBody{
		Date:         date.Format(dateLayout),
		Transactions: make([]transaction.Transaction, 0, len(txs)),
	}
	for _, tx := range txs {
		body.Transactions = append(body.Transactions, transaction.NewTransaction(tx))
	}

	return &DateOutput{Body: body}, nil
}
