package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/traikoa-go/internal/application/mediator"
	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
	"github.com/andrescamacho/traikoa-go/internal/domain/power"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// NearestControlSystemQuery finds the control system of a power closest to a system
type NearestControlSystemQuery struct {
	SystemID int
	PowerID  int
}

// NearestControlSystemResponse represents the nearest control system and its distance in light years
type NearestControlSystemResponse struct {
	From          *system.System
	Power         *power.Power
	ControlSystem *controlsystem.ControlSystem
	Distance      float64
}

// NearestControlSystemHandler handles the NearestControlSystem query
type NearestControlSystemHandler struct {
	systems        system.Loader
	powers         power.Repository
	controlSystems controlsystem.Repository
}

// NewNearestControlSystemHandler creates a new NearestControlSystemHandler
func NewNearestControlSystemHandler(
	systems system.Loader,
	powers power.Repository,
	controlSystems controlsystem.Repository,
) *NearestControlSystemHandler {
	return &NearestControlSystemHandler{
		systems:        systems,
		powers:         powers,
		controlSystems: controlSystems,
	}
}

// Handle executes the NearestControlSystem query
func (h *NearestControlSystemHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*NearestControlSystemQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *NearestControlSystemQuery")
	}

	from, err := h.systems.Load(ctx, query.SystemID)
	if err != nil {
		return nil, err
	}

	p, err := h.powers.Load(ctx, query.PowerID)
	if err != nil {
		return nil, err
	}

	ids := p.ControlSystemIDs()
	if len(ids) == 0 {
		return nil, shared.NewDomainError(fmt.Sprintf("power %s holds no control systems", p.Name()))
	}

	controlSystems, err := h.controlSystems.Search(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(controlSystems) == 0 {
		return nil, shared.NewDomainError(fmt.Sprintf("none of the control systems of power %s could be found", p.Name()))
	}

	nearest, distance := shared.FindNearest(from, controlSystems)

	return &NearestControlSystemResponse{
		From:          from,
		Power:         p,
		ControlSystem: nearest,
		Distance:      distance,
	}, nil
}
