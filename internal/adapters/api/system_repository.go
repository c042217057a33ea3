package api

import (
	"context"
	"fmt"

	domainPorts "github.com/andrescamacho/traikoa-go/internal/domain/ports"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

var _ system.Repository = (*SystemRepository)(nil)

// SystemRepository implements system.Repository on top of the systems namespace.
// Every call is one fresh round trip.
type SystemRepository struct {
	api domainPorts.SystemsAPI
}

// NewSystemRepository creates a new API-backed system repository
func NewSystemRepository(api domainPorts.SystemsAPI) *SystemRepository {
	return &SystemRepository{api: api}
}

// Load retrieves a system by id
func (r *SystemRepository) Load(ctx context.Context, id int) (*system.System, error) {
	data, err := r.api.GetSystem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load system %d: %w", id, err)
	}
	return system.FromData(data), nil
}

// Search returns the systems matching a name or a list of ids.
// Ids the service does not know are simply absent from the result.
func (r *SystemRepository) Search(ctx context.Context, by system.SearchBy) ([]*system.System, error) {
	data, err := r.api.SearchSystems(ctx, by)
	if err != nil {
		return nil, fmt.Errorf("failed to search systems by %s: %w", by.Kind(), err)
	}
	return systemsFromData(data), nil
}

// Bubble returns the systems around the system with the given id
func (r *SystemRepository) Bubble(ctx context.Context, id int, opts ...system.BubbleOption) ([]*system.System, error) {
	params, err := system.NewBubbleParams(opts...)
	if err != nil {
		return nil, err
	}

	data, err := r.api.Bubble(ctx, id, params.Radius)
	if err != nil {
		return nil, fmt.Errorf("failed to load bubble around system %d: %w", id, err)
	}
	return systemsFromData(data), nil
}

// BubbleAround is Bubble keyed by an already loaded system
func (r *SystemRepository) BubbleAround(ctx context.Context, center *system.System, opts ...system.BubbleOption) ([]*system.System, error) {
	if center == nil {
		return nil, shared.NewValidationError("system", "cannot be nil")
	}
	return r.Bubble(ctx, center.ID(), opts...)
}

func systemsFromData(data []*system.SystemData) []*system.System {
	systems := make([]*system.System, 0, len(data))
	for _, d := range data {
		systems = append(systems, system.FromData(d))
	}
	return systems
}
