package power_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/traikoa-go/internal/domain/power"
)

func TestFromData(t *testing.T) {
	// Arrange
	data := &power.PowerData{
		ID:             3,
		Name:           "Edmund Mahon",
		Superfaction:   "Alliance",
		ControlSystems: []int{10, 20},
		Income:         120,
		Overhead:       42.5,
		DefaultUpkeep:  30,
		Predicted:      47,
	}

	// Act
	p := power.FromData(data)
	data.ControlSystems[0] = 99

	// Assert
	assert.Equal(t, 3, p.ID())
	assert.Equal(t, "Edmund Mahon", p.Name())
	assert.Equal(t, "Alliance", p.Superfaction())
	assert.Equal(t, []int{10, 20}, p.ControlSystemIDs())
	assert.True(t, p.Controls(20))
	assert.False(t, p.Controls(99))
	assert.Equal(t, 120, p.Income())
	assert.InDelta(t, 42.5, p.Overhead(), 1e-9)
	assert.Equal(t, 30, p.DefaultUpkeep())
	assert.Equal(t, 47, p.Predicted())
}

func TestPowerData_Complete(t *testing.T) {
	assert.NoError(t, (&power.PowerData{ID: 1}).Complete())
	assert.Error(t, (&power.PowerData{Name: "no id"}).Complete())

	var missing *power.PowerData
	assert.Error(t, missing.Complete())
}
