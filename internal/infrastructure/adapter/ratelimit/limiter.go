package ratelimit

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

const memoryCleanUpInterval = time.Minute

// Limiter is a fixed-window per-key limiter together with the store connection it owns
type Limiter struct {
	*limiter.Limiter
	backend string
	client  redis.UniversalClient
}

// NewRate converts the configured budget to a limiter rate
func NewRate(rl config.RateLimitConfig) limiter.Rate {
	return limiter.Rate{
		Period: rl.Window,
		Limit:  int64(rl.Requests),
	}
}

// NewMemoryLimiter keeps counters in process memory; expired windows are swept every minute
func NewMemoryLimiter(rate limiter.Rate, prefix string) *Limiter {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          prefix,
		CleanUpInterval: memoryCleanUpInterval,
	})
	return &Limiter{
		Limiter: limiter.New(store, rate),
		backend: BackendMemory,
	}
}

// NewRedisLimiter keeps counters in redis so every instance shares them.
// The limiter takes ownership of client.
func NewRedisLimiter(client redis.UniversalClient, rate limiter.Rate, prefix string) (*Limiter, error) {
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: prefix,
	})
	if err != nil {
		return nil, err
	}
	return &Limiter{
		Limiter: limiter.New(store, rate),
		backend: BackendRedis,
		client:  client,
	}, nil
}

// Backend reports which store holds the counters
func (l *Limiter) Backend() string {
	return l.backend
}

// Close releases the redis connection, if any
func (l *Limiter) Close() error {
	if l.client == nil {
		return nil
	}
	return l.client.Close()
}
