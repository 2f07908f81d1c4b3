package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "ET"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3200)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThreshold", 200)  // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2) // seconds

	v.SetDefault("logger.level", "info")

	v.SetDefault("auth.tokenTTL", 0) // seconds, never expires
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.cookieName", "access_token")

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requests", 100)
	v.SetDefault("rateLimit.window", 900) // seconds
	v.SetDefault("rateLimit.store", "memory")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.keyPrefix", "expense-tracker:ratelimit:")
}

// getEnvironment determines the environment to use based on ET_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("ET_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"ET_DB_DRIVER":        "database.driver",
		"ET_DB_HOST":          "database.host",
		"ET_DB_PORT":          "database.port",
		"ET_DB_USERNAME":      "database.username",
		"ET_DB_PASSWORD":      "database.password",
		"ET_DB_NAME":          "database.database",
		"ET_DB_SSL_MODE":      "database.sslMode",
		"ET_SERVER_HOST":      "server.host",
		"ET_LOGGER_LEVEL":     "logger.level",
		"ET_AUTH_JWT_SECRET":  "auth.jwtSecret",
		"ET_AUTH_COOKIE_NAME": "auth.cookieName",
		"ET_RATE_LIMIT_STORE": "rateLimit.store",
		"ET_REDIS_ADDR":       "redis.addr",
		"ET_REDIS_PASSWORD":   "redis.password",
		"ET_REDIS_KEY_PREFIX": "redis.keyPrefix",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	// Positive-only integer settings
	positiveOverrides := map[string]string{
		"ET_SERVER_PORT":                   "server.port",
		"ET_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"ET_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"ET_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"ET_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"ET_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"ET_AUTH_BCRYPT_COST":              "auth.bcryptCost",
		"ET_RATE_LIMIT_REQUESTS":           "rateLimit.requests",
		"ET_RATE_LIMIT_WINDOW_SECONDS":     "rateLimit.window",
	}
	for env, key := range positiveOverrides {
		if value := getEnvInt(env, 0); value > 0 {
			v.Set(key, value)
		}
	}

	// Settings where zero is meaningful
	nonNegativeOverrides := map[string]string{
		"ET_DB_RETRY_ATTEMPTS":      "database.retryAttempts",
		"ET_DB_RETRY_DELAY_SECONDS": "database.retryDelay",
		"ET_AUTH_TOKEN_TTL_SECONDS": "auth.tokenTTL",
		"ET_REDIS_DB":               "redis.db",
	}
	for env, key := range nonNegativeOverrides {
		if value := getEnvInt(env, -1); value >= 0 {
			v.Set(key, value)
		}
	}

	if enabled := os.Getenv("ET_RATE_LIMIT_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			v.Set("rateLimit.enabled", parsed)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Convert seconds to time.Duration
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	// Convert minutes to time.Duration
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Second
	config.RateLimit.Window = time.Duration(config.RateLimit.Window) * time.Second
}
