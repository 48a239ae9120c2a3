package logx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Level(t *testing.T) {
	l, err := New("warn")
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = New("bogus")
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx := WithTraceID(WithRequestID(context.Background(), "rid-1"), "tid-1")
	WithFields(ctx, base).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "rid-1", fields["request_id"])
	require.Equal(t, "tid-1", fields["trace_id"])
}

func TestWithFields_NoIDs(t *testing.T) {
	base := zap.NewNop()
	require.Same(t, base, WithFields(context.Background(), base))
}

func TestSetLogger(t *testing.T) {
	prev := L()
	t.Cleanup(func() { SetLogger(prev) })

	core, logs := observer.New(zapcore.InfoLevel)
	configured := zap.New(core)
	SetLogger(configured)
	require.Same(t, configured, L())

	SetLogger(nil)
	require.Same(t, configured, L())

	WithFields(WithRequestID(context.Background(), "rid-2"), nil).Info("routed")
	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "rid-2", entries[0].ContextMap()["request_id"])
}
