package setup

import (
	cmdrCommands "github.com/andrescamacho/traikoa-go/internal/application/cmdr/commands"
	cmdrQueries "github.com/andrescamacho/traikoa-go/internal/application/cmdr/queries"
	"github.com/andrescamacho/traikoa-go/internal/application/mediator"
	powerplayQueries "github.com/andrescamacho/traikoa-go/internal/application/powerplay/queries"
	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
	"github.com/andrescamacho/traikoa-go/internal/domain/power"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	systems        system.Repository
	controlSystems controlsystem.Repository
	powers         power.Repository
	cmdrs          cmdr.Repository
	ledger         cmdr.RegistrationLedger
	clock          shared.Clock
}

// NewHandlerRegistry creates a new handler registry.
// ledger may be nil when no database is configured.
func NewHandlerRegistry(
	systems system.Repository,
	controlSystems controlsystem.Repository,
	powers power.Repository,
	cmdrs cmdr.Repository,
	ledger cmdr.RegistrationLedger,
	clock shared.Clock,
) *HandlerRegistry {
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		systems:        systems,
		controlSystems: controlSystems,
		powers:         powers,
		cmdrs:          cmdrs,
		ledger:         ledger,
		clock:          clock,
	}
}

// RegisterCmdrHandlers registers the cmdr command and query handlers.
// The history query is only available with a ledger.
func (r *HandlerRegistry) RegisterCmdrHandlers(m mediator.Mediator) error {
	registerHandler := cmdrCommands.NewRegisterCmdrHandler(r.cmdrs, r.ledger, r.clock)
	if err := mediator.RegisterHandler[*cmdrCommands.RegisterCmdrCommand](m, registerHandler); err != nil {
		return err
	}

	if r.ledger == nil {
		return nil
	}

	historyHandler := cmdrQueries.NewGetRegistrationHistoryHandler(r.ledger)
	return mediator.RegisterHandler[*cmdrQueries.GetRegistrationHistoryQuery](m, historyHandler)
}

// RegisterPowerplayHandlers registers the distance and bubble query handlers
func (r *HandlerRegistry) RegisterPowerplayHandlers(m mediator.Mediator) error {
	nearestHandler := powerplayQueries.NewNearestControlSystemHandler(r.systems, r.powers, r.controlSystems)
	if err := mediator.RegisterHandler[*powerplayQueries.NearestControlSystemQuery](m, nearestHandler); err != nil {
		return err
	}

	bubbleHandler := powerplayQueries.NewBubbleHandler(r.systems)
	return mediator.RegisterHandler[*powerplayQueries.BubbleQuery](m, bubbleHandler)
}

// CreateConfiguredMediator creates a mediator with every handler registered and
// the given middlewares applied, outermost first
func (r *HandlerRegistry) CreateConfiguredMediator(middlewares ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	for _, middleware := range middlewares {
		m.Use(middleware)
	}

	if err := r.RegisterCmdrHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterPowerplayHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}
