package power

import (
	"fmt"
	"slices"
)

// Power is an immutable snapshot of a faction contesting territorial control.
// CC figures (income, overhead, upkeep, predicted balance) are per cycle.
type Power struct {
	id               int
	name             string
	superfaction     string
	controlSystemIDs []int
	income           int
	overhead         float64
	defaultUpkeep    int
	predicted        int
}

// FromData builds a Power from a decoded API payload
func FromData(data *PowerData) *Power {
	return &Power{
		id:               data.ID,
		name:             data.Name,
		superfaction:     data.Superfaction,
		controlSystemIDs: slices.Clone(data.ControlSystems),
		income:           data.Income,
		overhead:         data.Overhead,
		defaultUpkeep:    data.DefaultUpkeep,
		predicted:        data.Predicted,
	}
}

func (p *Power) ID() int              { return p.id }
func (p *Power) Name() string         { return p.name }
func (p *Power) Superfaction() string { return p.superfaction }
func (p *Power) Income() int          { return p.income }
func (p *Power) Overhead() float64    { return p.overhead }
func (p *Power) DefaultUpkeep() int   { return p.defaultUpkeep }
func (p *Power) Predicted() int       { return p.predicted }

// ControlSystemIDs returns the ids of the control systems this power holds, in API order.
// They are not resolved; use the control system repository to load them.
func (p *Power) ControlSystemIDs() []int { return slices.Clone(p.controlSystemIDs) }

// Controls reports whether the control system id belongs to this power
func (p *Power) Controls(controlSystemID int) bool {
	return slices.Contains(p.controlSystemIDs, controlSystemID)
}

func (p *Power) String() string {
	return fmt.Sprintf("Power(%d %s)", p.id, p.name)
}

// PowerData is the wire shape of a power
type PowerData struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Superfaction   string  `json:"superfaction"`
	ControlSystems []int   `json:"control_systems"`
	Income         int     `json:"income"`
	Overhead       float64 `json:"overhead"`
	DefaultUpkeep  int     `json:"default_upkeep"`
	Predicted      int     `json:"predicted"`
}

// Complete reports the first required field missing from the payload
func (d *PowerData) Complete() error {
	if d == nil {
		return fmt.Errorf("power payload is null")
	}
	if d.ID <= 0 {
		return fmt.Errorf("power payload is missing id")
	}
	return nil
}
