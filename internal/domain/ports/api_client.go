package ports

import (
	"context"

	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
	"github.com/andrescamacho/traikoa-go/internal/domain/power"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// The interfaces below describe the Traikoa API, one per resource namespace.
//
// They are defined in the domain layer so repositories and application
// handlers depend on them rather than on the HTTP adapter:
//
//	┌─────────────────────────┐
//	│  Application Layer      │
//	│  (commands/queries)     │
//	└───────────┬─────────────┘
//	            │ depends on
//	            ↓
//	┌─────────────────────────┐
//	│  Domain Ports           │  ← These interfaces
//	└───────────┬─────────────┘
//	            ↑
//	            │ implements
//	┌─────────────────────────┐
//	│  adapters/api           │
//	└─────────────────────────┘
//
// Every method performs exactly one request. Nothing is cached or retried.

// SystemsAPI is the systems namespace
type SystemsAPI interface {
	GetSystem(ctx context.Context, id int) (*system.SystemData, error)
	SearchSystems(ctx context.Context, by system.SearchBy) ([]*system.SystemData, error)
	Bubble(ctx context.Context, id int, radius float64) ([]*system.SystemData, error)
}

// ControlSystemsAPI is the control_systems namespace
type ControlSystemsAPI interface {
	GetControlSystem(ctx context.Context, id int) (*controlsystem.ControlSystemData, error)
	SearchControlSystems(ctx context.Context, ids []int) ([]*controlsystem.ControlSystemData, error)
}

// PowersAPI is the powers namespace
type PowersAPI interface {
	GetPower(ctx context.Context, id int) (*power.PowerData, error)
	ListPowers(ctx context.Context) ([]*power.PowerData, error)
}

// CmdrsAPI is the cmdrs namespace
type CmdrsAPI interface {
	GetCmdr(ctx context.Context, discordID int64) (*cmdr.CmdrData, error)
	PostCmdr(ctx context.Context, payload *cmdr.CmdrData) (*cmdr.CmdrData, error)
}
