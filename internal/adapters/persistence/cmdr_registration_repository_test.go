package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/adapters/persistence"
	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/test/helpers"
)

func TestCmdrRegistrationRepository_RecordAndFindLatest(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCmdrRegistrationRepository(db)
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	failed := &cmdr.RegistrationRecord{
		DiscordID:   42,
		DiscordName: "jameson",
		Status:      cmdr.RegistrationFailed,
		Error:       "API error (status 500)",
		RecordedAt:  base,
	}
	succeeded := &cmdr.RegistrationRecord{
		DiscordID:   42,
		DiscordName: "jameson",
		SystemID:    helpers.IntPtr(7),
		PowerID:     helpers.IntPtr(3),
		Status:      cmdr.RegistrationSucceeded,
		RecordedAt:  base.Add(time.Minute),
	}

	// Act
	require.NoError(t, repo.Record(context.Background(), failed))
	require.NoError(t, repo.Record(context.Background(), succeeded))
	latest, err := repo.FindLatestByDiscordID(context.Background(), 42)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, failed.ID)
	assert.NotEqual(t, failed.ID, succeeded.ID)
	assert.Equal(t, succeeded.ID, latest.ID)
	assert.Equal(t, cmdr.RegistrationSucceeded, latest.Status)
	require.NotNil(t, latest.SystemID)
	assert.Equal(t, 7, *latest.SystemID)
	assert.True(t, latest.RecordedAt.Equal(base.Add(time.Minute)))
}

func TestCmdrRegistrationRepository_ListByDiscordID(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCmdrRegistrationRepository(db)
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, discordID := range []int64{42, 43, 42} {
		require.NoError(t, repo.Record(context.Background(), &cmdr.RegistrationRecord{
			DiscordID:   discordID,
			DiscordName: "cmdr",
			Status:      cmdr.RegistrationSucceeded,
			RecordedAt:  base.Add(time.Duration(i) * time.Hour),
		}))
	}

	// Act
	records, err := repo.ListByDiscordID(context.Background(), 42)

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].RecordedAt.Before(records[1].RecordedAt))
	assert.Nil(t, records[0].SystemID)
}

func TestCmdrRegistrationRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCmdrRegistrationRepository(db)

	// Act
	_, err := repo.FindLatestByDiscordID(context.Background(), 999)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, cmdr.ErrNoRegistration))
}
