package ledger

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// AddTransaction validates and records a transaction for ownerID
func (l *LedgerUseCase) AddTransaction(
	ctx context.Context,
	ownerID uint64,
	req usecase.AddTransactionRequest,
) (*entity.Transaction, error) {
	tx, err := entity.NewTransaction(
		ownerID,
		req.Amount,
		req.Kind,
		req.Description,
		req.TransactionDate,
		l.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := l.transactionRepo.Create(ctx, tx); err != nil {
		l.logger.Error("Failed to add transaction", map[string]any{
			"userId": ownerID,
			"kind":   string(tx.Kind),
			"error":  err.Error(),
		})
		return nil, err
	}

	l.logger.Info("Transaction added", map[string]any{
		"userId":          ownerID,
		"transactionId":   tx.ID,
		"kind":            string(tx.Kind),
		"transactionDate": tx.TransactionDate,
	})

	return tx, nil
}
