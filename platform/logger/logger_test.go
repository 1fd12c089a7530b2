package logger

import (
	"context"
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
	t.Cleanup(Replace(zap.New(core)))

	return logs
}

func TestInit(t *testing.T) {
	require.Error(t, Init("loud", true))
	require.NoError(t, Init("warn", false))
	t.Cleanup(func() {
		mu.Lock()
		global = &logger{zap: zap.NewNop()}
		mu.Unlock()
	})
}

func TestContextFields(t *testing.T) {
	logs := observe(t)

	ctx := ContextWithFields(context.Background(), String("request_id", "r1"))
	ctx = ContextWithFields(ctx, Int("attempt", 2))

	With(String("part_id", "P001")).Warn(ctx, "part missing", Bool("retry", false))

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "part missing", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "P001", fields["part_id"])
	assert.Equal(t, "r1", fields["request_id"])
	assert.EqualValues(t, 2, fields["attempt"])
	assert.Equal(t, false, fields["retry"])
}

func TestPackageHelpers(t *testing.T) {
	logs := observe(t)
	ctx := context.Background()

	Debug(ctx, "d")
	Info(ctx, "i")
	Warn(ctx, "w")
	Error(ctx, "e", ErrorF(assert.AnError))

	require.Equal(t, 4, logs.Len())
	assert.Equal(t, 1, logs.FilterMessage("e").FilterFieldKey("error").Len())
}
