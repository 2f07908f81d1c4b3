package database

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestManagerConnectAndMigrate(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	db := testDB.SetupTestDB(t)

	require.NoError(t, testDB.Manager.Ping(context.Background()))
	assert.True(t, db.Migrator().HasTable(&model.User{}))
	assert.True(t, db.Migrator().HasTable(&model.Transaction{}))
	assert.True(t, db.Migrator().HasIndex(&model.User{}, "idx_users_username"))
	assert.True(t, db.Migrator().HasIndex(&model.Transaction{}, "idx_transactions_owner_date"))

	version, err := testDB.Manager.MigrationManager().GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	// Running again is a no-op
	require.NoError(t, testDB.Manager.Migrate(context.Background()))
	var versions int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&versions).Error)
	assert.Equal(t, int64(1), versions)

	var applied model.MigrationVersion
	require.NoError(t, db.First(&applied).Error)
	assert.Equal(t, "sqlite", applied.Dialect)
}

func TestManagerEnforcesSchemaConstraints(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	db := testDB.SetupTestDB(t)

	owner := model.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, db.Create(&owner).Error)

	err := db.Create(&model.User{Username: "alice", PasswordHash: "other"}).Error
	assert.Error(t, err, "usernames must be unique")

	err = db.Omit("User").Create(&model.Transaction{
		UserID:          owner.ID,
		TransactionType: "transfer",
		Amount:          10,
	}).Error
	assert.Error(t, err, "transaction type must be income or expense")

	err = db.Omit("User").Create(&model.Transaction{
		UserID:          owner.ID + 100,
		TransactionType: "income",
		Amount:          10,
	}).Error
	assert.Error(t, err, "owner must exist")
}

func TestManagerRejectsInvalidConfig(t *testing.T) {
	manager := NewManager(&Config{Driver: "mysql"}, logger.NewNoopLogger(), nil)

	_, err := manager.Connect()
	assert.ErrorContains(t, err, "unsupported database driver")
	assert.ErrorIs(t, manager.Ping(context.Background()), ErrNotConnected)
	assert.ErrorIs(t, manager.Migrate(context.Background()), ErrNotConnected)
	assert.NoError(t, manager.Close())
}

func TestManagerCloseIsIdempotent(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)

	require.NoError(t, testDB.Manager.Close())
	assert.NoError(t, testDB.Manager.Close())
	assert.ErrorIs(t, testDB.Manager.Ping(context.Background()), ErrNotConnected)
}

func TestManagerDialClosesUnresponsiveHandle(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	m := testDB.Manager

	var opened *gorm.DB
	open := func() (*gorm.DB, error) {
		db, err := m.open()
		opened = db
		return db, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db, err := m.dial(ctx, open)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, db)
	require.NotNil(t, opened)

	sqlDB, err := opened.DB()
	require.NoError(t, err)
	assert.ErrorContains(t, sqlDB.Ping(), "database is closed")
}

func TestManagerDialKeepsHealthyHandle(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	m := testDB.Manager

	db, err := m.dial(context.Background(), m.open)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.NoError(t, sqlDB.Ping())
}

func TestManagerPoolMetrics(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	assert.Zero(t, testDB.Manager.PoolMetrics(), "not connected")

	testDB.Connect(t)
	require.NoError(t, testDB.Manager.Ping(context.Background()))

	metrics := testDB.Manager.PoolMetrics()
	assert.Equal(t, 1, metrics.MaxOpenConnections)
	assert.Equal(t, 1, metrics.OpenConnections)
	assert.Zero(t, metrics.InUse)
}
