package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_FromFile(t *testing.T) {
	// Arrange
	path := writeConfig(t, `
api:
  base_url: https://traikoa.example.com
  timeout: 3s
  rate_limit:
    requests: 5
database:
  type: sqlite
  path: /tmp/ledger.db
logging:
  level: debug
  format: json
`)

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://traikoa.example.com", cfg.API.BaseURL)
	assert.Equal(t, config.APIVersion, cfg.API.Version)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5, cfg.API.RateLimit.Requests)
	assert.Equal(t, 5, cfg.API.RateLimit.Burst)
	assert.Equal(t, "/tmp/ledger.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	// Arrange
	path := writeConfig(t, "api:\n  base_url: https://file.example.com\n")
	t.Setenv("TRAIKOA_API_BASE_URL", "https://env.example.com")
	t.Setenv("TRAIKOA_LOGGING_LEVEL", "warn")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_RejectsUnsupportedVersion(t *testing.T) {
	// Arrange
	path := writeConfig(t, "api:\n  version: v2\n")

	// Act
	_, err := config.LoadConfig(path)

	// Assert
	var validationErr *shared.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "api.version", validationErr.Field)
}

func TestLoadConfig_MissingFileIsError(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestSetDefaults(t *testing.T) {
	// Arrange
	cfg := &config.Config{}

	// Act
	config.SetDefaults(cfg)

	// Assert
	assert.Equal(t, "http://localhost:9292", cfg.API.BaseURL)
	assert.Equal(t, "v1", cfg.API.Version)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Zero(t, cfg.API.RateLimit.Requests)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "traikoa.db", cfg.Database.Path)
	assert.Equal(t, "traikoa", cfg.Metrics.Namespace)
	assert.Equal(t, "stdout", cfg.Tracing.Exporter)
	assert.NoError(t, config.ValidateConfig(cfg))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		wantDSN  string
		wantPool bool
	}{
		{
			name:    "sqlite path",
			cfg:     config.DatabaseConfig{Type: config.DatabaseTypeSQLite, Path: "ledger.db"},
			wantDSN: "ledger.db",
		},
		{
			name:    "sqlite without path is in memory",
			cfg:     config.DatabaseConfig{Type: config.DatabaseTypeSQLite},
			wantDSN: config.SQLiteMemoryPath,
		},
		{
			name: "postgres url wins over fields",
			cfg: config.DatabaseConfig{
				Type: config.DatabaseTypePostgres,
				URL:  "postgresql://traikoa:secret@db:5432/ledger",
				Host: "ignored",
			},
			wantDSN:  "postgresql://traikoa:secret@db:5432/ledger",
			wantPool: true,
		},
		{
			name: "postgres fields",
			cfg: config.DatabaseConfig{
				Type: config.DatabaseTypePostgres, Host: "localhost", Port: 5432,
				User: "traikoa", Password: "secret", Name: "ledger", SSLMode: "disable",
			},
			wantDSN:  "host=localhost port=5432 user=traikoa password=secret dbname=ledger sslmode=disable",
			wantPool: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDSN, tt.cfg.DSN())
			assert.Equal(t, tt.wantPool, tt.cfg.UsesPool())
		})
	}
}

func TestUserConfigHandler_RoundTrip(t *testing.T) {
	// Arrange
	handler, err := config.NewUserConfigHandlerAt(t.TempDir())
	require.NoError(t, err)

	// Act
	empty, err := handler.Load()
	require.NoError(t, err)
	require.NoError(t, handler.SetDefaultDiscordID(42))
	require.NoError(t, handler.SetHomeSystem(7))
	loaded, err := handler.Load()

	// Assert
	require.NoError(t, err)
	assert.Nil(t, empty.DefaultDiscordID)
	require.NotNil(t, loaded.DefaultDiscordID)
	assert.Equal(t, int64(42), *loaded.DefaultDiscordID)
	require.NotNil(t, loaded.HomeSystemID)
	assert.Equal(t, 7, *loaded.HomeSystemID)

	require.NoError(t, handler.Clear())
	cleared, err := handler.Load()
	require.NoError(t, err)
	assert.Nil(t, cleared.HomeSystemID)
}
