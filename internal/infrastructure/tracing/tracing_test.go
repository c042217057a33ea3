package tracing_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/andrescamacho/traikoa-go/internal/infrastructure/config"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/tracing"
)

func TestInit_DisabledInstallsNoopProvider(t *testing.T) {
	shutdown, err := tracing.Init(context.Background(), config.TracingConfig{Enabled: false}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, span := otel.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestInit_StdoutExporterWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.TracingConfig{
		Enabled:     true,
		ServiceName: "traikoa-test",
		Exporter:    "stdout",
		SampleRatio: 1,
	}

	shutdown, err := tracing.Init(context.Background(), cfg, &buf, nil)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "GET systems")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "GET systems")
}

func TestInit_RejectsUnknownExporter(t *testing.T) {
	cfg := config.TracingConfig{Enabled: true, ServiceName: "x", Exporter: "zipkin", SampleRatio: 1}

	_, err := tracing.Init(context.Background(), cfg, nil, nil)
	assert.Error(t, err)
}
