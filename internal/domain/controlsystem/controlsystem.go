package controlsystem

import (
	"fmt"
	"maps"
	"slices"

	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// ControlSystem is the star system anchoring a power's territory.
// It always carries the System it is hosted in, and that system's id equals SystemID.
type ControlSystem struct {
	id            int
	powerID       int
	systemID      int
	controlData   map[string]any
	exploitations []any
	system        *system.System
}

func (c *ControlSystem) ID() int                { return c.id }
func (c *ControlSystem) PowerID() int           { return c.powerID }
func (c *ControlSystem) SystemID() int          { return c.systemID }
func (c *ControlSystem) System() *system.System { return c.system }

// ControlData returns a copy of the volatile upkeep/income data for this control system
func (c *ControlSystem) ControlData() map[string]any { return maps.Clone(c.controlData) }

// Data is an alias of ControlData
func (c *ControlSystem) Data() map[string]any { return c.ControlData() }

// Exploitations returns a copy of the exploitation metadata
func (c *ControlSystem) Exploitations() []any { return slices.Clone(c.exploitations) }

// Name is the name of the host system
func (c *ControlSystem) Name() string { return c.system.Name() }

func (c *ControlSystem) X() float64 { return c.system.X() }
func (c *ControlSystem) Y() float64 { return c.system.Y() }
func (c *ControlSystem) Z() float64 { return c.system.Z() }

// DistanceTo returns the distance from the host system to other.
// Another ControlSystem measures from its own host system.
func (c *ControlSystem) DistanceTo(other shared.Positioned) float64 {
	return shared.Distance(c.system, other)
}

func (c *ControlSystem) String() string {
	return fmt.Sprintf("ControlSystem(%d %s)", c.id, c.system.Name())
}

// ControlSystemData is the wire shape of a control system
type ControlSystemData struct {
	ID            int            `json:"id"`
	PowerID       int            `json:"power_id"`
	SystemID      int            `json:"system_id"`
	ControlData   map[string]any `json:"control_data"`
	Exploitations []any          `json:"exploitations"`
}

// Complete reports the first required field missing from the payload
func (d *ControlSystemData) Complete() error {
	if d == nil {
		return fmt.Errorf("control system payload is null")
	}
	if d.ID <= 0 {
		return fmt.Errorf("control system payload is missing id")
	}
	if d.SystemID <= 0 {
		return fmt.Errorf("control system %d payload is missing system_id", d.ID)
	}
	return nil
}
