package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Load()
	logger.Store(zap.New(core))
	t.Cleanup(func() { logger.Store(prev) })

	return logs
}

func TestRequestIDAttached(t *testing.T) {
	logs := observe(t)

	ctx := WithRequestID(context.Background(), "req-1")
	Info(ctx, "hello", String("k", "v"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
	assert.Equal(t, "v", entry.ContextMap()["k"])
}

func TestLogMigration(t *testing.T) {
	logs := observe(t)

	LogMigration(context.Background(), "up", 3, nil)
	LogMigration(context.Background(), "down", 2, errors.New("boom"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
	assert.Equal(t, "success", logs.All()[0].ContextMap()["status"])
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
	assert.Equal(t, "fail", logs.All()[1].ContextMap()["status"])
}

func TestInitLevels(t *testing.T) {
	prev := logger.Load()
	t.Cleanup(func() { logger.Store(prev) })

	require.NoError(t, Init("catalog", WithEnv("prod"), WithLevel("warn")))
	assert.False(t, Logger().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger().Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, Init("catalog", WithEnv("local"), WithLevel("debug")))
	assert.True(t, Logger().Core().Enabled(zapcore.DebugLevel))
}
