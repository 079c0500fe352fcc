package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/truaxis/storefront/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	t.Run("builds json logger", func(t *testing.T) {
		l, err := New(config.LogConfig{Level: "debug", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("builds console logger", func(t *testing.T) {
		l, err := New(config.LogConfig{Level: "warn", Format: "console", Output: "stderr"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("unknown level defaults to info", func(t *testing.T) {
		l, err := New(config.LogConfig{Level: "chatty", Format: "json"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})
}

func TestNewForEnvironment(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		l, err := NewForEnvironment(env)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for input, want := range cases {
		assert.Equal(t, want, parseLevel(input), input)
	}
}

func TestContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	t.Run("round trips through context", func(t *testing.T) {
		ctx := WithContext(context.Background(), base)
		assert.Same(t, base, FromContext(ctx))
	})

	t.Run("missing logger falls back to nop", func(t *testing.T) {
		l := FromContext(context.Background())
		assert.NotNil(t, l)
		l.Info("never recorded")
	})

	t.Run("request id is stamped on logger and context", func(t *testing.T) {
		ctx, enriched := WithRequestID(context.Background(), base, "req-42")
		assert.Equal(t, "req-42", RequestIDFrom(ctx))

		enriched.Info("hello")
		entry := logs.TakeAll()[0]
		require.Len(t, entry.Context, 1)
		assert.Equal(t, "request_id", entry.Context[0].Key)
		assert.Equal(t, "req-42", entry.Context[0].String)
	})

	t.Run("user id is stamped on context", func(t *testing.T) {
		ctx, _ := WithUserID(context.Background(), base, "user-7")
		assert.Equal(t, "user-7", UserIDFrom(ctx))
	})

	t.Run("empty context yields empty ids", func(t *testing.T) {
		assert.Empty(t, RequestIDFrom(context.Background()))
		assert.Empty(t, UserIDFrom(context.Background()))
	})

	t.Run("no active span leaves logger untouched", func(t *testing.T) {
		assert.Same(t, base, WithTrace(context.Background(), base))
	})
}
