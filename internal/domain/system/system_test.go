package system_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

func newSystemData(id int, name string, x, y, z float64) *system.SystemData {
	return &system.SystemData{
		ID:       id,
		Name:     name,
		Position: &system.PositionData{X: x, Y: y, Z: z},
	}
}

func TestFromData_CopiesFields(t *testing.T) {
	// Arrange
	csID := 9
	data := newSystemData(1, "Sol", 1, 2, 3)
	data.NeedsPermit = true
	data.Stations = map[string]any{"Galileo": "Ocellus"}
	data.Exploitations = []any{map[string]any{"control_system_id": 9}}
	data.ControlSystemID = &csID

	// Act
	s := system.FromData(data)
	data.Stations["Mutated"] = true
	csID = 10

	// Assert
	assert.Equal(t, 1, s.ID())
	assert.Equal(t, "Sol", s.Name())
	assert.True(t, s.Permit())
	assert.True(t, s.Exploited())
	assert.NotContains(t, s.Stations(), "Mutated")
	got, ok := s.ControlSystemID()
	require.True(t, ok)
	assert.Equal(t, 9, got)
	assert.Equal(t, 1.0, s.X())
	assert.Equal(t, 2.0, s.Y())
	assert.Equal(t, 3.0, s.Z())
}

func TestSystem_NotExploitedWithoutExploitations(t *testing.T) {
	s := system.FromData(newSystemData(1, "Sol", 0, 0, 0))

	assert.False(t, s.Exploited())
	_, ok := s.ControlSystemID()
	assert.False(t, ok)
}

func TestSystem_DistanceTo(t *testing.T) {
	a := system.FromData(newSystemData(1, "A", 0, 0, 0))
	b := system.FromData(newSystemData(2, "B", 2, 3, 6))

	assert.InDelta(t, 7.0, a.DistanceTo(b), 1e-9)
	assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
	assert.Equal(t, 0.0, a.DistanceTo(a))
}

func TestSystemData_Complete(t *testing.T) {
	tests := []struct {
		name    string
		data    *system.SystemData
		wantErr string
	}{
		{name: "complete", data: newSystemData(1, "Sol", 0, 0, 0)},
		{name: "nil", data: nil, wantErr: "null"},
		{name: "missing id", data: &system.SystemData{Position: &system.PositionData{}}, wantErr: "id"},
		{name: "missing name", data: &system.SystemData{ID: 3, Position: &system.PositionData{}}, wantErr: "name"},
		{name: "missing position", data: &system.SystemData{ID: 3, Name: "Sol"}, wantErr: "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Complete()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearchBy_Validate(t *testing.T) {
	tests := []struct {
		name      string
		by        system.SearchBy
		wantField string
	}{
		{name: "name", by: system.ByName("Sol")},
		{name: "ids", by: system.ByIDs(1, 2)},
		{name: "blank name", by: system.ByName("  "), wantField: "name"},
		{name: "no ids", by: system.ByIDs(), wantField: "ids"},
		{name: "zero value", by: system.SearchBy{}, wantField: "search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.by.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *shared.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestByIDs_CopiesInput(t *testing.T) {
	ids := []int{11, 22, 33}
	by := system.ByIDs(ids...)
	ids[0] = 99

	assert.Equal(t, system.SearchKindIDs, by.Kind())
	assert.Equal(t, []int{11, 22, 33}, by.IDs())
}

func TestNewBubbleParams(t *testing.T) {
	params, err := system.NewBubbleParams()
	require.NoError(t, err)
	assert.Equal(t, 15.0, params.Radius)

	params, err = system.NewBubbleParams(system.WithRadius(30))
	require.NoError(t, err)
	assert.Equal(t, 30.0, params.Radius)

	_, err = system.NewBubbleParams(system.WithRadius(-1))
	var validationErr *shared.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "radius", validationErr.Field)
}
