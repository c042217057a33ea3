package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/infrastructure/config"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/database"
)

func TestNewConnection_SQLiteFile(t *testing.T) {
	// Arrange
	cfg := &config.DatabaseConfig{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "ledger.db"),
	}

	// Act
	db, err := database.NewConnection(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	// Assert
	require.NoError(t, database.AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable("cmdr_registrations"))
}

func TestNewConnection_UnsupportedType(t *testing.T) {
	_, err := database.NewConnection(&config.DatabaseConfig{Type: "mysql"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}
