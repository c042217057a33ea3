package system

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
)

// System is an immutable snapshot of a star system as reported by the Traikoa API
type System struct {
	id              int
	name            string
	position        shared.Position
	population      int64
	allegiance      string
	security        string
	needsPermit     bool
	stations        map[string]any
	ccValue         int
	contested       bool
	exploitations   []any
	controlSystemID *int
}

// FromData builds a System from a decoded API payload.
// The payload must be complete (see SystemData.Complete).
func FromData(data *SystemData) *System {
	s := &System{
		id:            data.ID,
		name:          data.Name,
		population:    data.Population,
		allegiance:    data.Allegiance,
		security:      data.Security,
		needsPermit:   data.NeedsPermit,
		stations:      maps.Clone(data.Stations),
		ccValue:       data.CCValue,
		contested:     data.Contested,
		exploitations: slices.Clone(data.Exploitations),
	}
	if data.Position != nil {
		s.position = shared.NewPosition(data.Position.X, data.Position.Y, data.Position.Z)
	}
	if data.ControlSystemID != nil {
		id := *data.ControlSystemID
		s.controlSystemID = &id
	}
	return s
}

func (s *System) ID() int                   { return s.id }
func (s *System) Name() string              { return s.name }
func (s *System) Position() shared.Position { return s.position }
func (s *System) Population() int64         { return s.population }
func (s *System) Allegiance() string        { return s.allegiance }
func (s *System) Security() string          { return s.security }
func (s *System) NeedsPermit() bool         { return s.needsPermit }
func (s *System) CCValue() int              { return s.ccValue }
func (s *System) Contested() bool           { return s.contested }

// Permit is an alias of NeedsPermit
func (s *System) Permit() bool { return s.needsPermit }

// Stations returns a copy of the station metadata
func (s *System) Stations() map[string]any { return maps.Clone(s.stations) }

// Exploitations returns a copy of the exploitation metadata
func (s *System) Exploitations() []any { return slices.Clone(s.exploitations) }

// Exploited reports whether any control system exploits this system
func (s *System) Exploited() bool { return len(s.exploitations) > 0 }

// ControlSystemID returns the id of this system as a control system, if it is one
func (s *System) ControlSystemID() (int, bool) {
	if s.controlSystemID == nil {
		return 0, false
	}
	return *s.controlSystemID, true
}

func (s *System) X() float64 { return s.position.X() }
func (s *System) Y() float64 { return s.position.Y() }
func (s *System) Z() float64 { return s.position.Z() }

// DistanceTo returns the distance to anything with coordinates
func (s *System) DistanceTo(other shared.Positioned) float64 {
	return shared.Distance(s, other)
}

func (s *System) String() string {
	return fmt.Sprintf("System(%d %s)", s.id, s.name)
}

// DTOs for system operations

type PositionData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SystemData is the wire shape of a system
type SystemData struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Position        *PositionData  `json:"position"`
	Population      int64          `json:"population"`
	Allegiance      string         `json:"allegiance"`
	Security        string         `json:"security"`
	NeedsPermit     bool           `json:"needs_permit"`
	Stations        map[string]any `json:"stations"`
	CCValue         int            `json:"cc_value"`
	Contested       bool           `json:"contested"`
	Exploitations   []any          `json:"exploitations"`
	ControlSystemID *int           `json:"control_system_id"`
}

// Complete reports the first required field missing from the payload
func (d *SystemData) Complete() error {
	if d == nil {
		return fmt.Errorf("system payload is null")
	}
	if d.ID <= 0 {
		return fmt.Errorf("system payload is missing id")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("system %d payload is missing name", d.ID)
	}
	if d.Position == nil {
		return fmt.Errorf("system %d payload is missing position", d.ID)
	}
	return nil
}
