package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	queryTimeout    time.Duration
	retryConfig     database.RetryConfig
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, queryTimeout time.Duration, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		queryTimeout:    queryTimeout,
		retryConfig:     database.DefaultRetryConfig(),
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:          transaction.OwnerID,
		TransactionType: string(transaction.Kind),
		Amount:          transaction.Amount,
		Description:     transaction.Description,
		TransactionDate: transaction.TransactionDate.UTC(),
		CreatedAt:       transaction.CreatedAt,
	}
}

func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:              txModel.ID,
		OwnerID:         txModel.UserID,
		Amount:          txModel.Amount,
		Kind:            entity.TransactionKind(txModel.TransactionType),
		Description:     txModel.Description,
		TransactionDate: txModel.TransactionDate.UTC(),
		CreatedAt:       txModel.CreatedAt.UTC(),
	}
}

// Create inserts a transaction and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"owner_id": transaction.OwnerID,
		"type":     transaction.Kind,
		"amount":   transaction.Amount,
	})

	txModel := r.entityToModel(transaction)

	qctx, cancel := queryContext(ctx, r.queryTimeout)
	defer cancel()

	if err := r.db.WithContext(qctx).Omit("User").Create(&txModel).Error; err != nil {
		r.logger.Error("Database error when creating transaction", map[string]any{
			"owner_id": transaction.OwnerID,
			"error":    err.Error(),
		})
		return r.errorClassifier.mapStoreError("create", "transaction", err, nil)
	}

	transaction.ID = txModel.ID
	transaction.CreatedAt = txModel.CreatedAt.UTC()
	return nil
}

// ListByOwner returns the owner's transactions dated within rng, inclusive, oldest first
func (r *TransactionRepository) ListByOwner(ctx context.Context, ownerID uint64, rng entity.DateRange) ([]*entity.Transaction, error) {
	var txModels []model.Transaction
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		txModels = txModels[:0]
		qctx, cancel := queryContext(ctx, r.queryTimeout)
		defer cancel()
		return r.db.WithContext(qctx).
			Where("user_id = ? AND transaction_date >= ? AND transaction_date <= ?",
				ownerID, rng.Start.UTC(), rng.End.UTC()).
			Order("transaction_date ASC").
			Order("id ASC").
			Find(&txModels).Error
	}, r.logger)

	if err != nil {
		r.logger.Error("Database error when listing transactions", map[string]any{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return nil, r.errorClassifier.mapStoreError("list", "transaction", err, nil)
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, r.modelToEntity(&txModels[i]))
	}

	r.logger.Debug("Transactions listed", map[string]any{
		"owner_id": ownerID,
		"count":    len(transactions),
	})
	return transactions, nil
}

// DeleteByOwner removes a transaction only when it belongs to the owner
func (r *TransactionRepository) DeleteByOwner(ctx context.Context, ownerID, transactionID uint64) error {
	qctx, cancel := queryContext(ctx, r.queryTimeout)
	defer cancel()

	result := r.db.WithContext(qctx).
		Where("id = ? AND user_id = ?", transactionID, ownerID).
		Delete(&model.Transaction{})

	if result.Error != nil {
		r.logger.Error("Database error when deleting transaction", map[string]any{
			"owner_id":       ownerID,
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.mapStoreError("delete", "transaction", result.Error, nil)
	}

	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}
