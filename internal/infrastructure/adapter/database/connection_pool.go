package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"gorm.io/gorm"
)

// saturationRatio is the in-use share of the pool above which a sample is logged as a warning
const saturationRatio = 0.8

// ConnectionPoolMetrics is one sample of the sql.DB pool statistics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	// NewWaits counts requests that blocked on the pool since the previous sample
	NewWaits          int64
	MaxIdleClosed     int64
	MaxLifetimeClosed int64
}

// Saturated reports whether most of the pool is checked out
func (p ConnectionPoolMetrics) Saturated() bool {
	return p.MaxOpenConnections > 0 && float64(p.InUse) > float64(p.MaxOpenConnections)*saturationRatio
}

// ConnectionPoolMonitor samples the pool periodically and warns when queries queue for connections
type ConnectionPoolMonitor struct {
	db       *gorm.DB
	logger   coreport.Logger
	mutex    sync.RWMutex
	last     ConnectionPoolMetrics
	sampled  bool
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a monitor for db's pool
func NewConnectionPoolMonitor(db *gorm.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start takes a first sample and then one every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if _, err := m.sample(); err != nil {
		close(m.done)
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer close(m.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				metrics, err := m.sample()
				if err != nil {
					m.logger.Error("Failed to sample connection pool", map[string]any{
						"error": err.Error(),
					})
					continue
				}
				m.report(metrics)
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop ends sampling and waits for the sampler to exit
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
		<-m.done
	})
}

// GetMetrics returns the latest sample
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.last
}

func (m *ConnectionPoolMonitor) sample() (ConnectionPoolMetrics, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return ConnectionPoolMetrics{}, fmt.Errorf("failed to get database connection: %w", err)
	}
	stats := sqlDB.Stats()

	m.mutex.Lock()
	defer m.mutex.Unlock()

	metrics := poolMetrics(stats)
	if m.sampled {
		metrics.NewWaits = stats.WaitCount - m.last.WaitCount
	}
	m.last = metrics
	m.sampled = true

	return metrics, nil
}

func poolMetrics(stats sql.DBStats) ConnectionPoolMetrics {
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

func (m *ConnectionPoolMonitor) report(metrics ConnectionPoolMetrics) {
	if !metrics.Saturated() && metrics.NewWaits == 0 {
		return
	}
	m.logger.Warn("Database connection pool under pressure", map[string]any{
		"in_use":    metrics.InUse,
		"max_open":  metrics.MaxOpenConnections,
		"idle":      metrics.IdleConnections,
		"new_waits": metrics.NewWaits,
		"wait_time": metrics.WaitDuration.String(),
	})
}
