package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionType determines the sign of a transaction in every aggregation:
// income contributes positively, expense negatively. The amount itself is
// always stored positive.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// ParseTransactionType converts a wire value into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("invalid transaction type %q", s)
}

// PaymentMethod partitions balances into cash and non-cash buckets.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
)

// ParsePaymentMethod converts a wire value into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodBankTransfer:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("invalid payment method %q", s)
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Description string
	Type        TransactionType
	Method      PaymentMethod
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionFilter narrows a listing. Nil fields apply no constraint;
// StartDate/EndDate are inclusive bounds on the transaction date.
type TransactionFilter struct {
	Type      *TransactionType
	Method    *PaymentMethod
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionFromStorage converts a storage row into the service model.
func TransactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Amount:      row.Amount,
		Category:    row.Category,
		Description: row.Description,
		Type:        TransactionType(row.Type),
		Method:      PaymentMethod(row.Method),
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func transactionTypeToStorage(t TransactionType) sqlconfig.TransactionType {
	return sqlconfig.TransactionType(t)
}

func paymentMethodToStorage(m PaymentMethod) sqlconfig.PaymentMethod {
	return sqlconfig.PaymentMethod(m)
}

func transactionsFromStorage(rows []*sqlconfig.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = TransactionFromStorage(row)
	}
	return converted
}
