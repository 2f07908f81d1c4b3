package ledger

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// ListTransactions returns ownerID's transactions dated inside the inclusive range
func (l *LedgerUseCase) ListTransactions(
	ctx context.Context,
	ownerID uint64,
	query usecase.DateRangeQuery,
) ([]*entity.Transaction, error) {
	if ownerID == 0 {
		return nil, errs.ErrInvalidOwnerID
	}

	rng, err := entity.NewDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	return l.listInRange(ctx, ownerID, rng)
}

func (l *LedgerUseCase) listInRange(ctx context.Context, ownerID uint64, rng entity.DateRange) ([]*entity.Transaction, error) {
	if rng.IsEmpty() {
		return []*entity.Transaction{}, nil
	}

	transactions, err := l.transactionRepo.ListByOwner(ctx, ownerID, rng)
	if err != nil {
		l.logger.Error("Failed to list transactions", map[string]any{
			"userId":    ownerID,
			"startDate": rng.Start,
			"endDate":   rng.End,
			"error":     err.Error(),
		})
		return nil, err
	}
	if transactions == nil {
		transactions = []*entity.Transaction{}
	}

	return transactions, nil
}
