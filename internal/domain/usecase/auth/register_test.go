package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/persistence"
	securitymocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	repo   *persistencemocks.MockUserRepository
	hasher *securitymocks.MockPasswordHasher
	tokens *securitymocks.MockSessionTokenService
	time   *coremocks.MockTimeProvider
	logger *coremocks.MockLogger
}

func newAuthUseCase(t *testing.T) (*AuthUseCase, authMocks) {
	m := authMocks{
		repo:   persistencemocks.NewMockUserRepository(t),
		hasher: securitymocks.NewMockPasswordHasher(t),
		tokens: securitymocks.NewMockSessionTokenService(t),
		time:   coremocks.NewMockTimeProvider(t),
		logger: coremocks.NewMockLogger(t),
	}
	return NewAuthUseCase(m.repo, m.hasher, m.tokens, m.time, m.logger), m
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	creds := usecase.Credentials{Username: "alice", Password: "s3cret"}

	t.Run("Successful registration", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("s3cret").Return("hashed", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "alice" && user.PasswordHash == "hashed"
		})).RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = 42
			return nil
		}).Once()
		m.logger.EXPECT().Info("User registered", mock.Anything).Once()

		user, err := uc.Register(ctx, creds)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.NotEqual(t, "s3cret", user.PasswordHash)
	})

	t.Run("Second registration of the same username is a conflict", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(&entity.User{ID: 1, Username: "alice"}, nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		user, err := uc.Register(ctx, creds)

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrUsernameTaken, err)
	})

	t.Run("Lost race surfaces the store conflict", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("s3cret").Return("hashed", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.NewStoreError("create", "user", errs.ErrUsernameTaken)).Once()
		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		user, err := uc.Register(ctx, creds)

		assert.Nil(t, user)
		assert.True(t, errs.IsUsernameTakenError(err))
	})

	t.Run("Missing password", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)

		user, err := uc.Register(ctx, usecase.Credentials{Username: "alice"})

		assert.Nil(t, user)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Password too long is not logged as a failure", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		tooLong := errs.NewValidationError("password", errs.ErrPasswordTooLong)
		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("s3cret").Return("", tooLong).Once()

		user, err := uc.Register(ctx, creds)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrPasswordTooLong)
	})

	t.Run("Lookup failure", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		dbErr := errors.New("database connection error")
		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, dbErr).Once()

		user, err := uc.Register(ctx, creds)

		assert.Nil(t, user)
		assert.Equal(t, dbErr, err)
	})

	t.Run("Store failure", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		dbErr := errors.New("disk full")
		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("s3cret").Return("hashed", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()
		m.logger.EXPECT().Error("Failed to create user", mock.Anything).Once()

		user, err := uc.Register(ctx, creds)

		assert.Nil(t, user)
		assert.Equal(t, dbErr, err)
	})
}
