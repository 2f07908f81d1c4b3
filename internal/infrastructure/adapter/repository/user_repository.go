package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	queryTimeout    time.Duration
	retryConfig     database.RetryConfig
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, queryTimeout time.Duration, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		queryTimeout:    queryTimeout,
		retryConfig:     database.DefaultRetryConfig(),
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		PasswordHash: userModel.PasswordHash,
		CreatedAt:    userModel.CreatedAt.UTC(),
		UpdatedAt:    userModel.UpdatedAt.UTC(),
	}
}

// GetByUsername retrieves a user by exact, case-sensitive username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.logger.Debug("Getting user by username", map[string]any{
		"username": username,
	})

	var userModel model.User
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		qctx, cancel := queryContext(ctx, r.queryTimeout)
		defer cancel()
		return r.db.WithContext(qctx).Where("username = ?", username).Take(&userModel).Error
	}, r.logger)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		r.logger.Error("Database error when getting user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, r.errorClassifier.mapStoreError("get", "user", err, nil)
	}

	return r.modelToEntity(&userModel), nil
}

// Create inserts a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"username": user.Username,
	})

	userModel := model.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	qctx, cancel := queryContext(ctx, r.queryTimeout)
	defer cancel()

	if err := r.db.WithContext(qctx).Create(&userModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate username on insert", map[string]any{
				"username": user.Username,
			})
		} else {
			r.logger.Error("Database error when creating user", map[string]any{
				"username": user.Username,
				"error":    err.Error(),
			})
		}
		return r.errorClassifier.mapStoreError("create", "user", err, errs.ErrUsernameTaken)
	}

	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	r.logger.Debug("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}
