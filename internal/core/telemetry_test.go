// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/angelamos/taskvault/internal/config"
)

func TestNewTelemetryDisabledIsNoop(t *testing.T) {
	ctx := context.Background()

	tel, err := NewTelemetry(ctx,
		config.OtelConfig{Enabled: false, ServiceName: "taskvault"},
		config.AppConfig{Version: "test"},
	)
	require.NoError(t, err)
	require.NotNil(t, tel.Tracer)

	_, span := tel.Tracer.Start(ctx, "noop")
	span.End()

	require.NoError(t, tel.Shutdown(ctx))
}

func TestTraceIDFromContext(t *testing.T) {
	require.Empty(t, TraceIDFromContext(context.Background()))

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	traceID := TraceIDFromContext(ctx)
	require.Len(t, traceID, 32)
	require.Equal(t, span.SpanContext().TraceID().String(), traceID)
}
