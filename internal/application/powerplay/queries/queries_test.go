package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/application/powerplay/queries"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
	"github.com/andrescamacho/traikoa-go/test/helpers"
)

func seed(t *testing.T) *helpers.TestRepositories {
	t.Helper()

	repos := helpers.NewTestRepositories(t)
	repos.API.AddSystem(helpers.CreateTestSystemData(1, "Home", 0, 0, 0))
	repos.API.AddSystem(helpers.CreateTestSystemData(2, "Near", 0, 5, 0))
	repos.API.AddSystem(helpers.CreateTestSystemData(3, "Nearer", 2, 0, 0))
	repos.API.AddSystem(helpers.CreateTestSystemData(4, "Distant", 40, 0, 0))
	repos.API.AddControlSystem(helpers.CreateTestControlSystemData(20, 9, 2))
	repos.API.AddControlSystem(helpers.CreateTestControlSystemData(30, 9, 3))
	repos.API.AddControlSystem(helpers.CreateTestControlSystemData(40, 9, 4))
	repos.API.AddPower(helpers.CreateTestPowerData(9, "Li Yong-Rui", 20, 30, 40))
	repos.API.AddPower(helpers.CreateTestPowerData(10, "Pranav Antal"))
	return repos
}

func TestNearestControlSystemHandler_FindsNearest(t *testing.T) {
	// Arrange
	repos := seed(t)
	handler := queries.NewNearestControlSystemHandler(repos.Systems, repos.Powers, repos.ControlSystems)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.NearestControlSystemQuery{SystemID: 1, PowerID: 9})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.NearestControlSystemResponse)
	assert.Equal(t, 30, result.ControlSystem.ID())
	assert.Equal(t, "Nearer", result.ControlSystem.Name())
	assert.InDelta(t, 2.0, result.Distance, 1e-9)
	assert.Equal(t, "Li Yong-Rui", result.Power.Name())
}

func TestNearestControlSystemHandler_PowerWithoutControlSystems(t *testing.T) {
	// Arrange
	repos := seed(t)
	handler := queries.NewNearestControlSystemHandler(repos.Systems, repos.Powers, repos.ControlSystems)

	// Act
	_, err := handler.Handle(context.Background(), &queries.NearestControlSystemQuery{SystemID: 1, PowerID: 10})

	// Assert
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, 0, repos.API.Calls("SearchControlSystems"))
}

func TestBubbleHandler_SortsByDistance(t *testing.T) {
	// Arrange
	repos := seed(t)
	handler := queries.NewBubbleHandler(repos.Systems)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.BubbleQuery{SystemID: 1})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.BubbleResponse)
	assert.Equal(t, system.DefaultBubbleRadius, result.Radius)
	assert.Equal(t, system.DefaultBubbleRadius, repos.API.LastRadius())
	require.Len(t, result.Neighbours, 2)
	assert.Equal(t, "Nearer", result.Neighbours[0].System.Name())
	assert.Equal(t, "Near", result.Neighbours[1].System.Name())
	assert.InDelta(t, 5.0, result.Neighbours[1].Distance, 1e-9)
}

func TestBubbleHandler_CustomRadius(t *testing.T) {
	// Arrange
	repos := seed(t)
	handler := queries.NewBubbleHandler(repos.Systems)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.BubbleQuery{SystemID: 1, Radius: 50})

	// Assert
	require.NoError(t, err)
	assert.Len(t, resp.(*queries.BubbleResponse).Neighbours, 3)
}

func TestBubbleHandler_NegativeRadiusIsRejected(t *testing.T) {
	// Arrange
	repos := seed(t)
	handler := queries.NewBubbleHandler(repos.Systems)

	// Act
	_, err := handler.Handle(context.Background(), &queries.BubbleQuery{SystemID: 1, Radius: -3})

	// Assert
	var validationErr *shared.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, 0, repos.API.Calls("GetSystem"))
}
