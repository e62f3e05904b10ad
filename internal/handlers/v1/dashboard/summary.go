package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// SummaryInput is the Huma input for the period summary.
type SummaryInput struct {
	Period string `query:"period" enum:"week,month" doc:"Summary period, defaults to month"`
}

// SummaryResponseBody is the response body for the period summary.
type SummaryResponseBody struct {
	Period           string `json:"period" doc:"Period the summary covers"`
	TotalIncome      string `json:"totalIncome" doc:"Sum of income amounts"`
	TotalExpense     string `json:"totalExpense" doc:"Sum of expense amounts"`
	NetAmount        string `json:"netAmount" doc:"Income minus expense, may be negative"`
	TransactionCount int    `json:"transactionCount" doc:"Number of transactions in the period"`
}

// SummaryOutput is the Huma output for the period summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

type periodSummarizer interface {
	PeriodSummary(ctx context.Context, period service.Period) (*service.PeriodSummary, error)
}

// SummaryHandler handles GET /v1/dashboard/summary.
type SummaryHandler struct {
	Service periodSummarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc periodSummarizer) *SummaryHandler {
	return &SummaryHandler{Service: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-summary",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/summary",
		Summary:     "Period summary",
		Description: "Income and expense totals for the trailing week or the current calendar month.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	period := service.PeriodMonth
	if input.Period != "" {
		parsed, err := service.ParsePeriod(input.Period)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid period", err)
		}
		period = parsed
	}

	summary, err := h.Service.PeriodSummary(ctx, period)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	return &SummaryOutput{
		Body: SummaryResponseBody{
			Period:           string(period),
			TotalIncome:      summary.TotalIncome.StringFixed(2),
			TotalExpense:     summary.TotalExpense.StringFixed(2),
			NetAmount:        summary.NetAmount.StringFixed(2),
			TransactionCount: summary.TransactionCount,
		},
	}, nil
}
