package ratelimit

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const (
	redisPingTimeout = 3 * time.Second
	memoryKeyPrefix  = "ratelimit"
)

// NewFromConfig builds the configured limiter.
// An unreachable redis at startup falls back to the memory store.
func NewFromConfig(ctx context.Context, rl config.RateLimitConfig, rc config.RedisConfig, logger coreport.Logger) *Limiter {
	rate := NewRate(rl)

	if rl.Store != BackendRedis {
		logger.Info("Using in-memory rate limit store", map[string]any{
			"requests": rl.Requests,
			"window":   rl.Window.String(),
		})
		return NewMemoryLimiter(rate, memoryKeyPrefix)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	err := client.Ping(pingCtx).Err()
	var l *Limiter
	if err == nil {
		l, err = NewRedisLimiter(client, rate, rc.KeyPrefix)
	}
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory rate limiting", map[string]any{
			"addr":  rc.Addr,
			"error": err.Error(),
		})
		_ = client.Close()
		return NewMemoryLimiter(rate, memoryKeyPrefix)
	}

	logger.Info("Using redis rate limit store", map[string]any{
		"addr":     rc.Addr,
		"db":       rc.DB,
		"requests": rl.Requests,
		"window":   rl.Window.String(),
	})
	return l
}
