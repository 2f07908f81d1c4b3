package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// TransactionKind is the category of a transaction
type TransactionKind string

// Transaction kinds
const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// IsValid reports whether k is one of the known kinds
func (k TransactionKind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single income or expense entry owned by a user
type Transaction struct {
	ID              uint64          // Unique identifier, assigned by the store
	OwnerID         uint64          // ID of the user this transaction belongs to
	Amount          float64         // Not range-checked; zero and negative values are kept as given
	Kind            TransactionKind // income or expense
	Description     string          // Optional free text
	TransactionDate time.Time       // When the money moved, always UTC
	CreatedAt       time.Time       // When the row was recorded
}

// NewTransaction validates the raw fields and builds a transaction for ownerID.
// An empty transactionDate means now.
func NewTransaction(
	ownerID uint64,
	amount *float64,
	kind string,
	description string,
	transactionDate string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if ownerID == 0 {
		return nil, errs.ErrInvalidOwnerID
	}
	if kind == "" || amount == nil {
		return nil, errs.NewValidationError("", errs.ErrMissingTransactionFields)
	}

	txKind := TransactionKind(kind)
	if !txKind.IsValid() {
		return nil, errs.NewValidationError("transactionType", fmt.Errorf("%w: %q", errs.ErrInvalidKind, kind))
	}

	now := timeProvider.Now().UTC()
	txDate := now
	if transactionDate != "" {
		parsed, err := ParseDate("transactionDate", transactionDate)
		if err != nil {
			return nil, err
		}
		txDate = parsed
	}

	return &Transaction{
		OwnerID:         ownerID,
		Amount:          *amount,
		Kind:            txKind,
		Description:     description,
		TransactionDate: txDate,
		CreatedAt:       now,
	}, nil
}

// IsIncome returns true if this transaction adds to savings
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense returns true if this transaction subtracts from savings
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}
