package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/adapters/metrics"
	"github.com/andrescamacho/traikoa-go/internal/application/mediator"
)

func TestAPIMetricsCollector_RecordsRequests(t *testing.T) {
	// Arrange
	collectors, err := metrics.NewCollectors("traikoa")
	require.NoError(t, err)

	// Act
	collectors.API.RecordAPIRequest("GET", "systems/{id}", 200, 0.02)
	collectors.API.RecordAPIRequest("GET", "systems/{id}", 404, 0.01)
	collectors.API.RecordAPIRequest("GET", "systems/search", 200, 0.03)

	// Assert
	count, err := testutil.GatherAndCount(collectors.Registry, "traikoa_client_api_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "one series per method/endpoint/status combination")
}

func TestNewCollectors_IndependentRegistries(t *testing.T) {
	first, err := metrics.NewCollectors("traikoa")
	require.NoError(t, err)
	second, err := metrics.NewCollectors("traikoa")
	require.NoError(t, err)

	first.API.RecordAPIRequest("GET", "powers", 200, 0.01)

	count, err := testutil.GatherAndCount(second.Registry, "traikoa_client_api_requests_total")
	require.NoError(t, err)
	assert.Zero(t, count)
}

type loadSystemQuery struct{}

func TestPrometheusMiddleware_RecordsStatus(t *testing.T) {
	// Arrange
	collectors, err := metrics.NewCollectors("traikoa")
	require.NoError(t, err)
	middleware := metrics.PrometheusMiddleware(collectors.Commands)

	ok := func(ctx context.Context, request mediator.Request) (mediator.Response, error) { return "ok", nil }
	fail := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, errors.New("boom")
	}

	// Act
	_, err = middleware(context.Background(), &loadSystemQuery{}, ok)
	require.NoError(t, err)
	_, err = middleware(context.Background(), &loadSystemQuery{}, fail)
	require.Error(t, err)

	// Assert
	count, err := testutil.GatherAndCount(collectors.Registry, "traikoa_client_commands_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "success and error series")
}

func TestPrometheusMiddleware_NilRecorderPassesThrough(t *testing.T) {
	middleware := metrics.PrometheusMiddleware(nil)

	resp, err := middleware(context.Background(), &loadSystemQuery{},
		func(ctx context.Context, request mediator.Request) (mediator.Response, error) { return 42, nil })

	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}

func TestAPIMetricsCollector_RegisterTwiceFails(t *testing.T) {
	// Arrange
	registry := prometheus.NewRegistry()
	collector := metrics.NewAPIMetricsCollector("traikoa")
	require.NoError(t, collector.Register(registry))

	// Act
	err := collector.Register(registry)

	// Assert
	var already prometheus.AlreadyRegisteredError
	assert.True(t, errors.As(err, &already))
}
