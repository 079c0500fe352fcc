package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"

	"github.com/truaxis/storefront/internal/infrastructure/config"
)

func TestNewTracerProvider(t *testing.T) {
	t.Run("disabled config yields no-op provider", func(t *testing.T) {
		tp, err := NewTracerProvider(context.Background(), config.TelemetryConfig{Enabled: false}, zap.NewNop())
		require.NoError(t, err)
		assert.Nil(t, tp.provider)
		assert.NoError(t, tp.Shutdown(context.Background()))
	})
}

func TestStartSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	t.Run("span carries name through the sdk", func(t *testing.T) {
		tracer := provider.Tracer(TracerName)
		_, span := tracer.Start(context.Background(), "checkout.place_order")
		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "checkout.place_order", spans[0].Name)
		exporter.Reset()
	})

	t.Run("record error sets error status", func(t *testing.T) {
		tracer := provider.Tracer(TracerName)
		_, span := tracer.Start(context.Background(), "checkout.place_order")
		RecordError(span, errors.New("insufficient stock"))
		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "insufficient stock", spans[0].Status.Description)
		require.Len(t, spans[0].Events, 1)
		assert.Equal(t, "exception", spans[0].Events[0].Name)
		exporter.Reset()
	})

	t.Run("record error tolerates nils", func(t *testing.T) {
		RecordError(nil, errors.New("ignored"))
		_, span := provider.Tracer(TracerName).Start(context.Background(), "noop")
		RecordError(span, nil)
		span.End()
		exporter.Reset()
	})
}

func TestTraceIDFrom(t *testing.T) {
	t.Run("empty without active span", func(t *testing.T) {
		assert.Empty(t, TraceIDFrom(context.Background()))
	})

	t.Run("returns the active trace id", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer func() { _ = provider.Shutdown(context.Background()) }()

		ctx, span := provider.Tracer(TracerName).Start(context.Background(), "lookup")
		defer span.End()

		assert.Len(t, TraceIDFrom(ctx), 32)
	})
}
