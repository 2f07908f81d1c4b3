package ledger

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// GetSummary totals ownerID's income and expenses over the inclusive range
func (l *LedgerUseCase) GetSummary(
	ctx context.Context,
	ownerID uint64,
	query usecase.DateRangeQuery,
) (*entity.Summary, error) {
	if ownerID == 0 {
		return nil, errs.ErrInvalidOwnerID
	}

	rng, err := entity.NewDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	transactions, err := l.listInRange(ctx, ownerID, rng)
	if err != nil {
		return nil, err
	}

	summary, err := entity.Summarize(transactions)
	if err != nil {
		l.logger.Error("Failed to compute summary", map[string]any{
			"userId":       ownerID,
			"transactions": len(transactions),
			"error":        err.Error(),
		})
		return nil, err
	}

	l.logger.Debug("Summary computed", map[string]any{
		"userId":       ownerID,
		"transactions": len(transactions),
		"message":      summary.Message,
	})

	return summary, nil
}
