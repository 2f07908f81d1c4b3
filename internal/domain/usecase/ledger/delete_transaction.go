package ledger

import (
	"context"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// DeleteTransaction removes transactionID when it belongs to ownerID.
// Another owner's transaction is reported as not found.
func (l *LedgerUseCase) DeleteTransaction(ctx context.Context, ownerID, transactionID uint64) error {
	if ownerID == 0 {
		return errs.ErrInvalidOwnerID
	}
	if transactionID == 0 {
		return errs.NewValidationError("id", errs.ErrInvalidTransactionID)
	}

	if err := l.transactionRepo.DeleteByOwner(ctx, ownerID, transactionID); err != nil {
		if errs.IsNotFoundError(err) {
			l.logger.Info("Transaction to delete not found", map[string]any{
				"userId":        ownerID,
				"transactionId": transactionID,
			})
			return err
		}
		l.logger.Error("Failed to delete transaction", map[string]any{
			"userId":        ownerID,
			"transactionId": transactionID,
			"error":         err.Error(),
		})
		return err
	}

	l.logger.Info("Transaction deleted", map[string]any{
		"userId":        ownerID,
		"transactionId": transactionID,
	})

	return nil
}
