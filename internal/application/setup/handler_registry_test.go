package setup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmdrCommands "github.com/andrescamacho/traikoa-go/internal/application/cmdr/commands"
	cmdrQueries "github.com/andrescamacho/traikoa-go/internal/application/cmdr/queries"
	"github.com/andrescamacho/traikoa-go/internal/application/setup"
	"github.com/andrescamacho/traikoa-go/test/helpers"
)

func TestCreateConfiguredMediator_RegisterThenHistory(t *testing.T) {
	// Arrange
	repos := helpers.NewTestRepositories(t)
	registry := setup.NewHandlerRegistry(repos.Systems, repos.ControlSystems, repos.Powers, repos.Cmdrs, repos.Ledger, nil)
	m, err := registry.CreateConfiguredMediator()
	require.NoError(t, err)

	// Act
	_, err = m.Send(context.Background(), &cmdrCommands.RegisterCmdrCommand{DiscordID: 42, DiscordName: "jameson"})
	require.NoError(t, err)
	resp, err := m.Send(context.Background(), &cmdrQueries.GetRegistrationHistoryQuery{DiscordID: 42})

	// Assert
	require.NoError(t, err)
	assert.Len(t, resp.(*cmdrQueries.GetRegistrationHistoryResponse).Records, 1)
}

func TestCreateConfiguredMediator_WithoutLedgerHasNoHistory(t *testing.T) {
	// Arrange
	repos := helpers.NewTestRepositories(t)
	registry := setup.NewHandlerRegistry(repos.Systems, repos.ControlSystems, repos.Powers, repos.Cmdrs, nil, nil)
	m, err := registry.CreateConfiguredMediator()
	require.NoError(t, err)

	// Act
	_, err = m.Send(context.Background(), &cmdrQueries.GetRegistrationHistoryQuery{DiscordID: 42})

	// Assert
	assert.Error(t, err)
}
