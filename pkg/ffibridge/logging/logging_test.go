package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlogLoggerWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(slog.New(handler)).With("component", "test")

	logger.Debug(context.Background(), "record created", "id", 7, Redacted("name"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "record created", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "test", rec["component"])
	assert.EqualValues(t, 7, rec["id"])
	assert.Equal(t, Placeholder(), rec["name"])
}

func TestNewNilUsesDefault(t *testing.T) {
	logger := New(nil)
	require.NotNil(t, logger)
	// must not panic
	logger.Info(context.Background(), "hello")
}

func TestDiscardDropsEverything(t *testing.T) {
	logger := Discard()
	logger.Error(context.Background(), "ignored", "k", "v")
	logger.With("a", 1).Warn(context.Background(), "ignored too")
}

func TestZapLoggerTranslatesAttrs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZap(zap.New(core)).With("component", "test")

	logger.Warn(context.Background(), "stale handle", "handle", uint64(42), Redacted("input"))

	entries := logs.All()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "stale handle", entry.Message)
	assert.Equal(t, zapcore.WarnLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "test", fields["component"])
	assert.EqualValues(t, 42, fields["handle"])
	assert.Equal(t, Placeholder(), fields["input"])
}

func TestZapLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZap(zap.New(core))
	ctx := context.Background()

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	var levels []zapcore.Level
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	assert.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestNewZapNil(t *testing.T) {
	logger := NewZap(nil)
	logger.Info(context.Background(), "dropped")
}
