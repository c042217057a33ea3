package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
)

func TestDistance_ZeroToSelf(t *testing.T) {
	p := shared.NewPosition(12.5, -3, 40)

	assert.Equal(t, 0.0, shared.Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	a := shared.NewPosition(1, 2, 3)
	b := shared.NewPosition(-4, 8, 15.5)

	assert.Equal(t, shared.Distance(a, b), shared.Distance(b, a))
}

func TestDistance_Euclidean(t *testing.T) {
	a := shared.NewPosition(0, 0, 0)
	b := shared.NewPosition(3, 4, 12)

	assert.InDelta(t, 13.0, shared.Distance(a, b), 1e-9)
}

func TestFindNearest(t *testing.T) {
	// Arrange
	from := shared.NewPosition(0, 0, 0)
	targets := []shared.Position{
		shared.NewPosition(10, 0, 0),
		shared.NewPosition(0, 2, 0),
		shared.NewPosition(0, 0, -5),
	}

	// Act
	nearest, distance := shared.FindNearest(from, targets)

	// Assert
	assert.Equal(t, targets[1], nearest)
	assert.InDelta(t, 2.0, distance, 1e-9)
}

func TestFindNearest_Empty(t *testing.T) {
	nearest, distance := shared.FindNearest[shared.Position](shared.NewPosition(0, 0, 0), nil)

	assert.Equal(t, shared.Position{}, nearest)
	assert.Equal(t, 0.0, distance)
}
