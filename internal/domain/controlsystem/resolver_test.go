package controlsystem_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// stubLoader serves systems from a map and counts calls
type stubLoader struct {
	systems map[int]*system.System
	err     error
	calls   int
}

func (l *stubLoader) Load(ctx context.Context, id int) (*system.System, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	s, ok := l.systems[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func newSystem(id int, name string, x, y, z float64) *system.System {
	return system.FromData(&system.SystemData{
		ID:       id,
		Name:     name,
		Position: &system.PositionData{X: x, Y: y, Z: z},
	})
}

func newData(id, systemID int) *controlsystem.ControlSystemData {
	return &controlsystem.ControlSystemData{
		ID:          id,
		PowerID:     2,
		SystemID:    systemID,
		ControlData: map[string]any{"upkeep": 20},
	}
}

func TestNew_LoadsHostSystem(t *testing.T) {
	// Arrange
	loader := &stubLoader{systems: map[int]*system.System{5: newSystem(5, "Cubeo", 1, 2, 3)}}

	// Act
	cs, err := controlsystem.New(context.Background(), newData(10, 5), nil, loader)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, 5, cs.System().ID())
	assert.Equal(t, "Cubeo", cs.Name())
	assert.Equal(t, 2, cs.PowerID())
	assert.Equal(t, 1.0, cs.X())
	assert.Equal(t, cs.ControlData(), cs.Data())
}

func TestNew_SuppliedHostSkipsLoader(t *testing.T) {
	// Arrange
	loader := &stubLoader{}
	host := newSystem(5, "Cubeo", 1, 2, 3)

	// Act
	cs, err := controlsystem.New(context.Background(), newData(10, 5), host, loader)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, loader.calls)
	assert.Same(t, host, cs.System())
}

func TestNew_SuppliedHostWithoutLoader(t *testing.T) {
	cs, err := controlsystem.New(context.Background(), newData(10, 5), newSystem(5, "Cubeo", 0, 0, 0), nil)

	require.NoError(t, err)
	assert.Equal(t, 10, cs.ID())
}

func TestNew_MismatchedHostIsIntegrityError(t *testing.T) {
	// Act
	cs, err := controlsystem.New(context.Background(), newData(10, 5), newSystem(6, "Other", 0, 0, 0), nil)

	// Assert
	assert.Nil(t, cs)
	var integrityErr *shared.IntegrityError
	require.True(t, errors.As(err, &integrityErr))
	assert.Equal(t, 10, integrityErr.ControlSystemID)
	assert.Equal(t, 5, integrityErr.ExpectedSystemID)
	assert.Equal(t, 6, integrityErr.ActualSystemID)
}

func TestNew_LoaderReturningWrongSystemIsIntegrityError(t *testing.T) {
	// Arrange
	loader := &stubLoader{systems: map[int]*system.System{5: newSystem(6, "Other", 0, 0, 0)}}

	// Act
	cs, err := controlsystem.New(context.Background(), newData(10, 5), nil, loader)

	// Assert
	assert.Nil(t, cs)
	var integrityErr *shared.IntegrityError
	assert.True(t, errors.As(err, &integrityErr))
}

func TestNew_LoaderErrorPropagates(t *testing.T) {
	// Arrange
	loadErr := errors.New("connection refused")
	loader := &stubLoader{err: loadErr}

	// Act
	cs, err := controlsystem.New(context.Background(), newData(10, 5), nil, loader)

	// Assert
	assert.Nil(t, cs)
	assert.ErrorIs(t, err, loadErr)
}

func TestNew_NoHostAndNoLoaderIsValidationError(t *testing.T) {
	_, err := controlsystem.New(context.Background(), newData(10, 5), nil, nil)

	var validationErr *shared.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestNew_IncompleteDataIsDecodeError(t *testing.T) {
	loader := &stubLoader{}

	cs, err := controlsystem.New(context.Background(), &controlsystem.ControlSystemData{ID: 10}, nil, loader)

	assert.Nil(t, cs)
	var decodeErr *shared.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "control_system", decodeErr.Entity)
	assert.Contains(t, decodeErr.Error(), "system_id")
	var validationErr *shared.ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.Equal(t, 0, loader.calls)
}

func TestControlSystem_DistanceUsesHostCoordinates(t *testing.T) {
	// Arrange
	a, err := controlsystem.New(context.Background(), newData(10, 5), newSystem(5, "A", 0, 0, 0), nil)
	require.NoError(t, err)
	b, err := controlsystem.New(context.Background(), newData(11, 6), newSystem(6, "B", 0, 0, 9), nil)
	require.NoError(t, err)
	target := newSystem(7, "Target", 0, 0, 4)

	// Assert
	assert.InDelta(t, 9.0, a.DistanceTo(b), 1e-9)
	assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
	assert.InDelta(t, 4.0, a.DistanceTo(target), 1e-9)
	assert.Equal(t, target.DistanceTo(a), a.DistanceTo(target))
}
