package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// TransactionRepository is the transaction store consumed by the ledger use case
type TransactionRepository interface {
	// Create persists a new transaction and sets its generated ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the row breaks a store constraint (unknown kind, missing owner)
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByOwner returns the owner's transactions dated inside rng (both bounds inclusive),
	// ordered by transaction date then ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByOwner(ctx context.Context, ownerID uint64, rng entity.DateRange) ([]*entity.Transaction, error)

	// DeleteByOwner removes the transaction only if it belongs to ownerID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no row matched both the ID and the owner
	// - ErrDatabaseConnection: If database connection fails
	DeleteByOwner(ctx context.Context, ownerID, transactionID uint64) error
}
