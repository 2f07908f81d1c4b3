package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			if calls < 3 {
				return errors.New("read: connection reset by peer")
			}
			return nil
		}, logger.NewNoopLogger())

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("PermanentErrorNotRetried", func(t *testing.T) {
		calls := 0
		permanent := errors.New("syntax error at or near SELECT")
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return permanent
		}, logger.NewNoopLogger())

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("GivesUpAfterMaxRetries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return errors.New("database is locked")
		}, logger.NewNoopLogger())

		assert.EqualError(t, err, "database is locked")
		assert.Equal(t, 3, calls)
	})

	t.Run("StopsWhenContextCanceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := fastRetry()
		cfg.RetryInterval = time.Hour
		cfg.MaxInterval = time.Hour
		err := RetryOnTransientError(ctx, cfg, func() error {
			return errors.New("broken pipe")
		}, logger.NewNoopLogger())

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffCapped(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 200*time.Millisecond, calculateBackoffWithJitter(1, cfg))
	assert.Equal(t, 300*time.Millisecond, calculateBackoffWithJitter(5, cfg))
}
