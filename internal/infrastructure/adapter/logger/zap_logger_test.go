package logger

import (
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	atom := zap.NewAtomicLevelAt(zap.InfoLevel)
	observed, logs := observer.New(atom)
	l := newZapLoggerWithCore(observed, atom)

	assert.Equal(t, core.LogLevelInfo, l.GetLevel())

	l.Debug("hidden", nil)
	l.Info("shown", map[string]any{"userId": uint64(7)})
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, uint64(7), entry.ContextMap()["userId"])

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("now visible", nil)
	assert.Equal(t, 1, logs.FilterMessage("now visible").Len())

	l.SetLevel(core.LogLevelError)
	l.Warn("suppressed", nil)
	l.Error("failure", map[string]any{"error": "boom"})
	assert.Equal(t, 0, logs.FilterMessage("suppressed").Len())
	assert.Equal(t, 1, logs.FilterMessage("failure").Len())
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelWarn)

	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	assert.NotPanics(t, func() {
		l.Debug("ignored", nil)
		l.Error("ignored", map[string]any{"k": "v"})
	})
	assert.NoError(t, l.Flush())
}
