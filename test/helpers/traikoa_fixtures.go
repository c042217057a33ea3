package helpers

import (
	"fmt"

	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
	"github.com/andrescamacho/traikoa-go/internal/domain/power"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// CreateTestSystemData builds a SystemData at the given coordinates
func CreateTestSystemData(id int, name string, x, y, z float64) *system.SystemData {
	return &system.SystemData{
		ID:            id,
		Name:          name,
		Position:      &system.PositionData{X: x, Y: y, Z: z},
		Population:    1000000,
		Allegiance:    "Independent",
		Security:      "Medium",
		Stations:      map[string]any{},
		CCValue:       10,
		Exploitations: []any{},
	}
}

// CreateTestControlSystemData builds a ControlSystemData hosted by systemID
func CreateTestControlSystemData(id, powerID, systemID int) *controlsystem.ControlSystemData {
	return &controlsystem.ControlSystemData{
		ID:            id,
		PowerID:       powerID,
		SystemID:      systemID,
		ControlData:   map[string]any{"fortify_trigger": 5000},
		Exploitations: []any{},
	}
}

// CreateTestPowerData builds a PowerData controlling the given control systems
func CreateTestPowerData(id int, name string, controlSystemIDs ...int) *power.PowerData {
	return &power.PowerData{
		ID:             id,
		Name:           name,
		Superfaction:   "Empire",
		ControlSystems: controlSystemIDs,
		Income:         100,
		Overhead:       12.5,
		DefaultUpkeep:  20,
		Predicted:      80,
	}
}

// CreateTestCmdrData builds a CmdrData with optional system and power
func CreateTestCmdrData(discordID int64, systemID, powerID *int) *cmdr.CmdrData {
	return &cmdr.CmdrData{
		DiscordID:   discordID,
		DiscordName: fmt.Sprintf("cmdr-%d", discordID),
		SystemID:    systemID,
		PowerID:     powerID,
	}
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
