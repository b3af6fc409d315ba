package logging

import (
	"claon/internal/core/domain/logging"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEntriesAreWrittenAsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerFrom(zap.New(core))

	log.Warning(context.Background(), "Rate limit exceeded.", logging.Entry("key", "reset-password::a@b.com"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "Rate limit exceeded.", entries[0].Message)
	require.Equal(t, "reset-password::a@b.com", entries[0].ContextMap()["key"])
}

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerFrom(zap.New(core))
	ctx := logging.WithRequestID(context.Background(), "req-1")

	log.Info(ctx, "New user has been created.", logging.Entry("userId", 1))
	log.Error(context.Background(), "Could not commit unit of work.")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "req-1", entries[0].ContextMap()["requestID"])
	require.NotContains(t, entries[1].ContextMap(), "requestID")
}
