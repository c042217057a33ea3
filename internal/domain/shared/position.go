package shared

import (
	"fmt"
	"math"
)

// Positioned is implemented by anything located in galactic space.
// Coordinates are in light years.
type Positioned interface {
	X() float64
	Y() float64
	Z() float64
}

// Position is an immutable point in 3D space
type Position struct {
	x, y, z float64
}

// NewPosition creates a position from its coordinates
func NewPosition(x, y, z float64) Position {
	return Position{x: x, y: y, z: z}
}

func (p Position) X() float64 { return p.x }
func (p Position) Y() float64 { return p.y }
func (p Position) Z() float64 { return p.z }

func (p Position) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.x, p.y, p.z)
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Positioned) float64 {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	dz := a.Z() - b.Z()
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// FindNearest returns the nearest target and its distance
// Returns the zero value and 0 if targets is empty
func FindNearest[T Positioned](from Positioned, targets []T) (T, float64) {
	var nearest T
	if len(targets) == 0 {
		return nearest, 0
	}

	nearest = targets[0]
	minDistance := Distance(from, targets[0])

	for _, target := range targets[1:] {
		distance := Distance(from, target)
		if distance < minDistance {
			minDistance = distance
			nearest = target
		}
	}

	return nearest, minDistance
}
