package ledger

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	query := usecase.DateRangeQuery{StartDate: "2024-01-01", EndDate: "2024-12-31"}

	testCases := []struct {
		name         string
		transactions []*entity.Transaction
		expected     entity.Summary
	}{
		{
			name: "Savings",
			transactions: []*entity.Transaction{
				{ID: 1, Kind: entity.KindIncome, Amount: 100},
				{ID: 2, Kind: entity.KindExpense, Amount: 40},
			},
			expected: entity.Summary{TotalIncome: 100, TotalExpenses: 40, Savings: 60, Message: entity.MessageSavings},
		},
		{
			name: "Deficit",
			transactions: []*entity.Transaction{
				{ID: 1, Kind: entity.KindIncome, Amount: 10},
				{ID: 2, Kind: entity.KindExpense, Amount: 50},
			},
			expected: entity.Summary{TotalIncome: 10, TotalExpenses: 50, Savings: 0, Message: entity.MessageDeficit},
		},
		{
			name:         "Empty period",
			transactions: nil,
			expected:     entity.Summary{Message: entity.MessageZeroSavings},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo, logger := newLedgerUseCase(t)

			repo.EXPECT().ListByOwner(mock.Anything, uint64(5), mock.Anything).Return(tc.transactions, nil).Once()
			logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

			summary, err := uc.GetSummary(ctx, 5, query)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, *summary)
		})
	}

	t.Run("Missing bounds", func(t *testing.T) {
		uc, _, _ := newLedgerUseCase(t)

		summary, err := uc.GetSummary(ctx, 5, usecase.DateRangeQuery{StartDate: "2024-01-01"})

		assert.Nil(t, summary)
		assert.ErrorIs(t, err, errs.ErrMissingDateRange)
	})

	t.Run("Totals out of range", func(t *testing.T) {
		uc, repo, logger := newLedgerUseCase(t)

		repo.EXPECT().ListByOwner(mock.Anything, uint64(5), mock.Anything).Return([]*entity.Transaction{
			{ID: 1, Kind: entity.KindIncome, Amount: 1.7e308},
			{ID: 2, Kind: entity.KindIncome, Amount: 1.7e308},
		}, nil).Once()
		logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
		logger.EXPECT().Error("Failed to compute summary", mock.Anything).Once()

		summary, err := uc.GetSummary(ctx, 5, query)

		assert.Nil(t, summary)
		assert.ErrorIs(t, err, errs.ErrSummaryOverflow)
	})
}
