package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/usecase/auth"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/ratelimit"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

const minProductionSecretLength = 32

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.IsProduction())
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	err = dbManager.Migrate(migrateCtx)
	cancelMigrate()
	if err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	queryTimeout := dbManager.Config().QueryTimeout
	userRepo := repository.NewUserRepository(db, queryTimeout, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, queryTimeout, appLogger)

	// Security adapters
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	sessions, err := security.NewJWTSessionService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create session token service", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(userRepo, hasher, sessions, tp, appLogger)
	ledgerUseCase := ledger.NewLedgerUseCase(transactionRepo, tp, appLogger)

	// Rate limiter, redis when configured and reachable
	var rateLimiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		storeCtx, cancelStore := context.WithTimeout(context.Background(), 5*time.Second)
		rateLimiter = ratelimit.NewFromConfig(storeCtx, cfg.RateLimit, cfg.Redis, appLogger)
		cancelStore()
		defer func() { _ = rateLimiter.Close() }()
	}

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authUseCase, handler.CookieConfig{
		Name:   cfg.Auth.CookieName,
		Secure: cfg.IsProduction(),
	}, tp, appLogger)
	transactionHandler := handler.NewTransactionHandler(ledgerUseCase, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, queryTimeout, appLogger)

	// Initialize Gin router
	router := gin.New()

	middlewareConfig := routes.MiddlewareConfig{
		Production:       cfg.IsProduction(),
		RateLimitEnabled: cfg.RateLimit.Enabled,
	}
	if rateLimiter != nil {
		middlewareConfig.RateLimiter = rateLimiter.Limiter
	}
	routes.SetupMiddlewares(router, middlewareConfig, tp, appLogger)

	routes.SetupRoutes(
		router,
		authHandler,
		transactionHandler,
		healthHandler,
		middleware.SessionGate(authUseCase, cfg.Auth.CookieName, appLogger),
	)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		appLogger.Info("Shutting down server...", nil)
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Database == "" && os.Getenv("ET_DB_NAME") == "" {
		missingConfigs = append(missingConfigs, "database.database (or ET_DB_NAME environment variable)")
	}

	if cfg.Database.Driver != database.DriverSQLite {
		requiredEnv := []struct{ key, env, value string }{
			{"database.host", "ET_DB_HOST", cfg.Database.Host},
			{"database.port", "ET_DB_PORT", cfg.Database.Port},
			{"database.username", "ET_DB_USERNAME", cfg.Database.Username},
			{"database.password", "ET_DB_PASSWORD", cfg.Database.Password},
		}
		for _, r := range requiredEnv {
			if r.value == "" && os.Getenv(r.env) == "" {
				missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.key, r.env))
			}
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate auth configuration
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or ET_AUTH_JWT_SECRET environment variable)")
	}

	if cfg.Auth.CookieName == "" {
		missingConfigs = append(missingConfigs, "auth.cookieName")
	}

	if cfg.RateLimit.Enabled && (cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0) {
		missingConfigs = append(missingConfigs, "rateLimit.requests and rateLimit.window")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.IsProduction() {
		if len(cfg.Auth.JWTSecret) < minProductionSecretLength {
			return fmt.Errorf("auth.jwtSecret must be at least %d bytes in production", minProductionSecretLength)
		}

		var warnings []string

		// Check database security settings
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver != database.DriverSQLite &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite is meant for local runs")
		}

		if cfg.Auth.TokenTTL == 0 {
			warnings = append(warnings, "auth.tokenTTL is 0, session tokens never expire")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
