package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionBody is the request body for creating or updating a transaction.
type TransactionBody struct {
	Amount      string `json:"amount" required:"true" minLength:"1" doc:"Positive decimal amount"`
	Category    string `json:"category" required:"true" minLength:"1" doc:"Category label"`
	Description string `json:"description,omitempty" doc:"Optional free text"`
	Type        string `json:"type" required:"true" enum:"Income,Expense" doc:"Transaction type"`
	Method      string `json:"method" required:"true" enum:"Cash,Card,UPI,Bank Transfer" doc:"Payment method"`
	Date        string `json:"date" required:"true" doc:"Transaction date (YYYY-MM-DD)"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body TransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// parseTransactionBody validates the shared body fields and returns the
// parsed values. Enum membership is already enforced by the schema; this
// guards the amount and date formats the schema cannot express.
func parseTransactionBody(body TransactionBody) (amount decimal.Decimal, txType service.TransactionType, method service.PaymentMethod, date time.Time, err error) {
	amount, err = decimal.NewFromString(body.Amount)
	if err != nil {
		return amount, txType, method, date, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return amount, txType, method, date, huma.NewError(http.StatusBadRequest, "amount must be positive")
	}

	txType, err = service.ParseTransactionType(body.Type)
	if err != nil {
		return amount, txType, method, date, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	method, err = service.ParsePaymentMethod(body.Method)
	if err != nil {
		return amount, txType, method, date, huma.NewError(http.StatusBadRequest, "invalid method", err)
	}

	date, err = time.Parse(DateLayout, body.Date)
	if err != nil {
		return amount, txType, method, date, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	return amount, txType, method, date, nil
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new ledger transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	amount, txType, method, date, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		Amount:      amount,
		Category:    input.Body.Category,
		Description: input.Body.Description,
		Type:        sqlconfig.TransactionType(txType),
		Method:      sqlconfig.PaymentMethod(method),
		Date:        date,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   transactionFromStorage(action.Result),
	}, nil
}
