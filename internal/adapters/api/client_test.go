package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/adapters/api"
	"github.com/andrescamacho/traikoa-go/internal/adapters/metrics"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/config"
	"github.com/andrescamacho/traikoa-go/test/helpers"
)

type pingResponse struct {
	OK bool `json:"ok"`
}

func TestClient_GetBuildsVersionedURL(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.Respond(http.MethodGet, "/v1/ping", http.StatusOK, `{"ok":true}`)
	client := server.NewClient()

	// Act
	var out pingResponse
	err := client.Get(context.Background(), "ping", url.Values{"name": []string{"Sol"}}, &out)

	// Assert
	require.NoError(t, err)
	assert.True(t, out.OK)

	req := server.LastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/v1/ping", req.Path)
	assert.Equal(t, "name=Sol", req.RawQuery)
	assert.NotEmpty(t, req.Header.Get(api.RequestIDHeader))
}

func TestClient_GetEncodesSpacesAsPercent20(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.Respond(http.MethodGet, "/v1/ping", http.StatusOK, `{"ok":true}`)
	client := server.NewClient()

	// Act
	err := client.Get(context.Background(), "ping", url.Values{"name": []string{"Wolf 359+"}}, &pingResponse{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "name=Wolf%20359%2B", server.LastRequest(t).RawQuery)
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.Respond(http.MethodPost, "/v1/ping", http.StatusCreated, `{"ok":true}`)
	client := server.NewClient()

	// Act
	var out pingResponse
	err := client.Post(context.Background(), "ping", map[string]any{"a": 1}, &out)

	// Assert
	require.NoError(t, err)
	assert.True(t, out.OK)

	req := server.LastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"a":1}`, string(req.Body))
}

func TestClient_NotFoundIsDistinguished(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	client := server.NewClient()

	// Act
	err := client.Get(context.Background(), "systems/999", nil, &pingResponse{})

	// Assert
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))

	var statusErr *api.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestClient_ServerErrorIsNotNotFound(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.Respond(http.MethodGet, "/v1/ping", http.StatusInternalServerError, `{"error":"boom"}`)
	client := server.NewClient()

	// Act
	err := client.Get(context.Background(), "ping", nil, &pingResponse{})

	// Assert
	require.Error(t, err)
	assert.False(t, api.IsNotFound(err))
	assert.True(t, api.IsServerError(err))

	var statusErr *api.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Contains(t, statusErr.Body, "boom")
}

func TestClient_MalformedBodyIsDecodeError(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.Respond(http.MethodGet, "/v1/ping", http.StatusOK, `{"ok":`)
	client := server.NewClient()

	// Act
	err := client.Get(context.Background(), "ping", nil, &pingResponse{})

	// Assert
	var decodeErr *api.DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestClient_EmptyBodyIsDecodeError(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.Respond(http.MethodGet, "/v1/ping", http.StatusOK, ``)
	client := server.NewClient()

	// Act
	err := client.Get(context.Background(), "ping", nil, &pingResponse{})

	// Assert
	var decodeErr *api.DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestClient_UnreachableServerIsNetworkError(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	cfg := server.APIConfig()
	server.Close()
	client := api.NewTraikoaClient(cfg)

	// Act
	err := client.Get(context.Background(), "ping", nil, &pingResponse{})

	// Assert
	var networkErr *api.NetworkError
	require.True(t, errors.As(err, &networkErr))
	assert.False(t, api.IsNotFound(err))
}

func TestClient_CallerDeadlineIsNetworkTimeout(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.RespondAfter(http.MethodGet, "/v1/ping", 2*time.Second, http.StatusOK, `{"ok":true}`)
	client := server.NewClient()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Act
	err := client.Get(ctx, "ping", nil, &pingResponse{})

	// Assert
	var networkErr *api.NetworkError
	require.True(t, errors.As(err, &networkErr))
	assert.True(t, networkErr.Timeout())
}

func TestClient_RecordsMetrics(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.Respond(http.MethodGet, "/v1/ping", http.StatusOK, `{"ok":true}`)
	collectors, err := metrics.NewCollectors("traikoa")
	require.NoError(t, err)
	client := server.NewClient(api.WithMetrics(collectors.API))

	// Act
	require.NoError(t, client.Get(context.Background(), "ping", nil, &pingResponse{}))
	_ = client.Get(context.Background(), "missing", nil, &pingResponse{})

	// Assert
	count, err := testutil.GatherAndCount(collectors.Registry, "traikoa_client_api_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestClient_RateLimitedClientStillServes(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.Respond(http.MethodGet, "/v1/ping", http.StatusOK, `{"ok":true}`)
	cfg := server.APIConfig()
	cfg.RateLimit = config.RateLimitConfig{Requests: 100, Burst: 2}
	client := api.NewTraikoaClient(cfg)

	// Act
	for i := 0; i < 3; i++ {
		require.NoError(t, client.Get(context.Background(), "ping", nil, &pingResponse{}))
	}

	// Assert
	assert.Len(t, server.Requests(), 3)
}

func TestClient_ConcurrentUse(t *testing.T) {
	// Arrange
	server := helpers.NewFakeTraikoaServer(t)
	server.Respond(http.MethodGet, "/v1/ping", http.StatusOK, `{"ok":true}`)
	client := server.NewClient()

	// Act
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			errs <- client.Get(context.Background(), "ping", nil, &pingResponse{})
		}()
	}

	// Assert
	for i := 0; i < 10; i++ {
		assert.NoError(t, <-errs)
	}
	assert.Len(t, server.Requests(), 10)
}
