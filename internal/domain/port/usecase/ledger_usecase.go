package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// AddTransactionRequest carries the raw fields of a new transaction
type AddTransactionRequest struct {
	Amount          *float64 // nil when the client omitted it
	Kind            string
	Description     string
	TransactionDate string // empty means now
}

// DateRangeQuery carries the raw startDate/endDate query values
type DateRangeQuery struct {
	StartDate string
	EndDate   string
}

// LedgerUseCase defines the operations on an owner's transactions
type LedgerUseCase interface {
	// AddTransaction records a transaction for ownerID
	AddTransaction(ctx context.Context, ownerID uint64, req AddTransactionRequest) (*entity.Transaction, error)

	// ListTransactions returns ownerID's transactions inside the inclusive date range
	ListTransactions(ctx context.Context, ownerID uint64, query DateRangeQuery) ([]*entity.Transaction, error)

	// GetSummary aggregates income, expenses and savings over the date range
	GetSummary(ctx context.Context, ownerID uint64, query DateRangeQuery) (*entity.Summary, error)

	// DeleteTransaction removes transactionID if it belongs to ownerID
	DeleteTransaction(ctx context.Context, ownerID, transactionID uint64) error
}
