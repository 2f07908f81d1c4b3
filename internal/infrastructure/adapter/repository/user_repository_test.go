package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return database.NewTestDBManager(t, logger.NewNoopLogger()).SetupTestDB(t)
}

func newTestUser(username string) *entity.User {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	return &entity.User{
		Username:     username,
		PasswordHash: "$2a$10$hash-for-" + username,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), time.Second, logger.NewNoopLogger())
	ctx := context.Background()

	alice := newTestUser("alice")
	require.NoError(t, repo.Create(ctx, alice))
	assert.NotZero(t, alice.ID)

	bob := newTestUser("bob")
	require.NoError(t, repo.Create(ctx, bob))
	assert.NotEqual(t, alice.ID, bob.ID)

	found, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, alice.PasswordHash, found.PasswordHash)
	assert.True(t, alice.CreatedAt.Equal(found.CreatedAt))
}

func TestUserRepositoryUsernameIsCaseSensitive(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), time.Second, logger.NewNoopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("Alice")))

	_, err := repo.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	assert.NoError(t, repo.Create(ctx, newTestUser("alice")))
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), time.Second, logger.NewNoopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("alice")))

	err := repo.Create(ctx, newTestUser("alice"))
	assert.ErrorIs(t, err, errs.ErrUsernameTaken)
	assert.True(t, errs.IsUsernameTakenError(err))

	var storeErr *errs.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "create", storeErr.Operation)
	assert.Equal(t, "user", storeErr.Entity)
}

func TestUserRepositoryGetUnknownUser(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), time.Second, logger.NewNoopLogger())

	user, err := repo.GetByUsername(context.Background(), "nobody")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUserRepositoryClosedDatabase(t *testing.T) {
	testDB := database.NewTestDBManager(t, logger.NewNoopLogger())
	db := testDB.SetupTestDB(t)
	repo := NewUserRepository(db, time.Second, logger.NewNoopLogger())

	require.NoError(t, testDB.Manager.Close())

	_, err := repo.GetByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.Equal(t, errs.CodeInternalServer, errs.ErrorCode(err))
}
