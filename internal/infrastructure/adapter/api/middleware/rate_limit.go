package middleware

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// RateLimit counts requests per client IP against l.
// When the store fails the request is let through.
func RateLimit(l *limiter.Limiter, timeProvider coreport.TimeProvider, logger coreport.Logger) gin.HandlerFunc {
	return mgin.NewMiddleware(l,
		mgin.WithKeyGetter(func(c *gin.Context) string {
			return c.ClientIP()
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			logger.Warn("Rate limit store unavailable, allowing request", map[string]any{
				"error":      err.Error(),
				"client_ip":  c.ClientIP(),
				"request_id": c.GetString(RequestIDKey),
			})
			c.Next()
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.Header("Retry-After", strconv.FormatInt(retryAfter(c, timeProvider), 10))

			logger.Warn("Rate limit exceeded", map[string]any{
				"client_ip":  c.ClientIP(),
				"limit":      c.Writer.Header().Get("X-RateLimit-Limit"),
				"request_id": c.GetString(RequestIDKey),
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(domainerr.ErrRateLimited))
		}),
	)
}

// retryAfter is the number of whole seconds until the window resets, at least one
func retryAfter(c *gin.Context, timeProvider coreport.TimeProvider) int64 {
	reset, err := strconv.ParseInt(c.Writer.Header().Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return 1
	}
	if seconds := reset - timeProvider.Now().Unix(); seconds > 1 {
		return seconds
	}
	return 1
}
