package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseStatus reports database reachability and connection pool usage
type DatabaseStatus interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db      DatabaseStatus
	timeout time.Duration
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseStatus, timeout time.Duration, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		timeout: timeout,
		logger:  logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	pingErr := h.db.Ping(ctx)
	pool := dto.NewPoolStatusResponse(h.db.PoolMetrics())

	if pingErr != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": pingErr.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Database: "down", Pool: pool})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up", Pool: pool})
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello")
}
