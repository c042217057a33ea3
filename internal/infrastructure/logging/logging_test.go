package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/infrastructure/logging"
)

func TestLogger_JSONIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: "debug", Format: "json", Output: &buf})

	log.With(logging.String("component", "api")).
		Info(context.Background(), "request completed", logging.Int("status", 200), logging.Err(errors.New("boom")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "api", entry["component"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: "warn", Format: "text", Output: &buf})

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "hidden too")
	assert.Empty(t, buf.String())

	log.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext_DefaultsToNoop(t *testing.T) {
	log := logging.FromContext(context.Background())
	require.NotNil(t, log)
	log.Info(context.Background(), "dropped")

	var buf bytes.Buffer
	stored := logging.New(logging.Config{Output: &buf})
	ctx := logging.ContextWithLogger(context.Background(), stored)
	logging.FromContext(ctx).Info(ctx, "kept")
	assert.Contains(t, buf.String(), "kept")
}
