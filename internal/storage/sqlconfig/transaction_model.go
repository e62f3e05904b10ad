package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is stored as its literal string value; the database CHECK
// constraint enforces the same closed set.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// PaymentMethod is stored as its literal string value.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
)

// Transaction represents a ledger transaction record.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Type        TransactionType `db:"type"`
	Method      PaymentMethod   `db:"method"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Type        TransactionType
	Method      PaymentMethod
	Date        time.Time
}

// TransactionUpdate replaces every mutable field of a transaction.
// ID and CreatedAt are immutable; UpdatedAt is refreshed by the store.
type TransactionUpdate struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Type        TransactionType
	Method      PaymentMethod
	Date        time.Time
}

// TransactionFilter specifies filters for listing transactions.
// Nil fields apply no constraint. StartDate and EndDate are inclusive bounds
// on the transaction date; Date matches a single day exactly.
type TransactionFilter struct {
	Type      *TransactionType
	Method    *PaymentMethod
	StartDate *time.Time
	EndDate   *time.Time
	Date      *time.Time
	Limit     int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
