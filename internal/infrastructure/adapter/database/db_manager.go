package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotConnected is returned when the manager is used before Connect succeeds
var ErrNotConnected = errors.New("database is not connected")

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
	monitorInterval   time.Duration
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:          config,
		logger:          logger,
		timeProvider:    timeProvider,
		monitorInterval: 30 * time.Second,
	}
}

// Connect establishes a database connection with the configured pool settings
func (m *Manager) Connect() (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", m.describe())

	var err error
	var gormDB *gorm.DB

	attempts := m.config.RetryAttempts + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			time.Sleep(m.config.RetryDelay)
		}

		gormDB, err = m.dial(context.Background(), m.open)
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	fields := m.describe()
	fields["max_open_conns"] = m.config.MaxOpenConns
	fields["max_idle_conns"] = m.config.MaxIdleConns
	fields["query_timeout"] = m.config.QueryTimeout.String()
	m.logger.Info("Successfully connected to database", fields)

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)

	if m.monitorInterval > 0 {
		m.connectionMonitor = NewConnectionPoolMonitor(gormDB, m.logger)
		if err := m.connectionMonitor.Start(m.monitorInterval); err != nil {
			m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
			m.connectionMonitor = nil
		}
	}

	return m.db, nil
}

// dial opens a handle and pings it. A handle that does not answer is closed before returning.
func (m *Manager) dial(ctx context.Context, open func() (*gorm.DB, error)) (*gorm.DB, error) {
	gormDB, err := open()
	if err != nil {
		return nil, err
	}

	if err := m.ping(ctx, gormDB); err != nil {
		if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return gormDB, nil
}

// open creates the gorm handle for the configured driver
func (m *Manager) open() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now().UTC()
		},
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}

	switch m.config.Driver {
	case DriverPostgres:
		return gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
	case DriverSQLite:
		return gorm.Open(sqlite.Open(m.config.DSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return ErrNotConnected
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}
	return m.ping(ctx, m.db)
}

func (m *Manager) ping(ctx context.Context, gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Config returns the configuration the manager was built with
func (m *Manager) Config() *Config {
	return m.config
}

// PoolMetrics returns the monitor's latest sample, or the live pool statistics when no monitor runs
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor != nil {
		return m.connectionMonitor.GetMetrics()
	}
	if m.db == nil {
		return ConnectionPoolMetrics{}
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return ConnectionPoolMetrics{}
	}
	return poolMetrics(sqlDB.Stats())
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
		m.connectionMonitor = nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	m.db = nil
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}

func (m *Manager) describe() map[string]any {
	if m.config.Driver == DriverSQLite {
		return map[string]any{
			"driver": m.config.Driver,
			"path":   m.config.Database,
		}
	}
	return map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	}
}
