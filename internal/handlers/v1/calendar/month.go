package calendar

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

const dateLayout = "2006-01-02"

// MonthInput is the Huma input for the calendar month view.
type MonthInput struct {
	Year  int `path:"year" minimum:"1970" maximum:"9999" doc:"Calendar year"`
	Month int `path:"month" minimum:"1" maximum:"12" doc:"Calendar month (1-12)"`
}

// CalendarDay is the API model for one day's aggregate.
type CalendarDay struct {
	Date             string `json:"date" doc:"Day (YYYY-MM-DD)"`
	TransactionCount int    `json:"transactionCount" doc:"Transactions on this day"`
	Income           string `json:"income" doc:"Sum of income amounts on this day"`
	Expense          string `json:"expense" doc:"Sum of expense amounts on this day"`
}

// MonthResponseBody is the response body for the calendar month view.
type MonthResponseBody struct {
	Days []CalendarDay `json:"days" doc:"Days with at least one transaction, ascending"`
}

// MonthOutput is the Huma output for the calendar month view.
type MonthOutput struct {
	Body MonthResponseBody
}

type monthReader interface {
	CalendarMonth(ctx context.Context, year int, month time.Month) ([]service.CalendarDay, error)
}

// MonthHandler handles GET /v1/calendar/month/{year}/{month}.
type MonthHandler struct {
	Service monthReader
}

// NewMonthHandler creates a new MonthHandler.
func NewMonthHandler(svc monthReader) *MonthHandler {
	return &MonthHandler{Service: svc}
}

// Register registers the calendar month endpoint with the Huma API.
func (h *MonthHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "calendar-month",
		Method:      http.MethodGet,
		Path:        "/v1/calendar/month/{year}/{month}",
		Summary:     "Calendar month",
		Description: "Per-day transaction counts and income/expense sums for one month.",
		Tags:        []string{"Calendar"},
	}, h.handle)
}

func (h *MonthHandler) handle(ctx context.Context, input *MonthInput) (*MonthOutput, error) {
	days, err := h.Service.CalendarMonth(ctx, input.Year, time.Month(input.Month))
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build calendar", err)
	}

	body := MonthResponseBody{Days: make([]CalendarDay, 0, len(days))}
	for _, day := range days {
		body.Days = append(body.Days, CalendarDay{
			Date:             day.Date.Format(dateLayout),
			TransactionCount: day.TransactionCount,
			Income:           day.Income.StringFixed(2),
			Expense:          day.Expense.StringFixed(2),
		})
	}

	return &MonthOutput{Body: body}, nil
}
