package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates PostgreSQL indexes the portable schema cannot express
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)

	// Summary queries scan one owner's rows of a single kind
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_owner_type_date
		ON transactions (user_id, transaction_type, transaction_date)
	`).Error; err != nil {
		m.logger.Error("Failed to create owner_type_date composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN suits append-mostly temporal data
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_date_brin
		ON transactions USING BRIN (transaction_date)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on transaction_date", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings; failures are logged, not returned
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)

	if err := db.Exec(`
		ALTER TABLE transactions SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`
		ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
