package dto

import (
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
)

// HealthResponse reports service and database status
type HealthResponse struct {
	Status   string             `json:"status"`
	Database string             `json:"database"`
	Pool     PoolStatusResponse `json:"pool"`
}

// PoolStatusResponse is the database connection pool usage
type PoolStatusResponse struct {
	Open      int   `json:"open"`
	InUse     int   `json:"inUse"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"maxOpen"`
	WaitCount int64 `json:"waitCount"`
	Saturated bool  `json:"saturated"`
}

// NewPoolStatusResponse converts a pool sample to its response form
func NewPoolStatusResponse(m database.ConnectionPoolMetrics) PoolStatusResponse {
	return PoolStatusResponse{
		Open:      m.OpenConnections,
		InUse:     m.InUse,
		Idle:      m.IdleConnections,
		MaxOpen:   m.MaxOpenConnections,
		WaitCount: m.WaitCount,
		Saturated: m.Saturated(),
	}
}
