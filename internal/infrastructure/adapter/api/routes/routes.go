package routes

import (
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// MiddlewareConfig configures the global middleware chain
type MiddlewareConfig struct {
	Production       bool
	RateLimitEnabled bool
	RateLimiter      *limiter.Limiter
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
	sessionGate gin.HandlerFunc,
) {
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)

	userRoutes := router.Group("/api/user")
	{
		userRoutes.POST("/register", authHandler.Register)
		userRoutes.POST("/login", authHandler.Login)
		userRoutes.POST("/logout", authHandler.Logout)

		// Everything below requires a session
		transactionRoutes := userRoutes.Group("/transaction", sessionGate)
		{
			transactionRoutes.POST("", transactionHandler.AddTransaction)
			transactionRoutes.GET("", transactionHandler.ListTransactions)
			transactionRoutes.GET("/summary", transactionHandler.GetSummary)
			transactionRoutes.DELETE("/:id", transactionHandler.DeleteTransaction)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, cfg MiddlewareConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.SecurityHeaders(cfg.Production))
	if cfg.RateLimitEnabled && cfg.RateLimiter != nil {
		router.Use(middleware.RateLimit(cfg.RateLimiter, timeProvider, logger))
	}
}
