package api

import (
	"context"
	"fmt"

	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
	domainPorts "github.com/andrescamacho/traikoa-go/internal/domain/ports"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

var _ controlsystem.Repository = (*ControlSystemRepository)(nil)

// ControlSystemRepository implements controlsystem.Repository.
// Each decoded control system is attached to its host system, loaded
// through systems unless the caller already has it.
type ControlSystemRepository struct {
	api     domainPorts.ControlSystemsAPI
	systems system.Loader
}

// NewControlSystemRepository creates a new API-backed control system repository
func NewControlSystemRepository(api domainPorts.ControlSystemsAPI, systems system.Loader) *ControlSystemRepository {
	return &ControlSystemRepository{
		api:     api,
		systems: systems,
	}
}

// Load retrieves a control system and loads its host system
func (r *ControlSystemRepository) Load(ctx context.Context, id int) (*controlsystem.ControlSystem, error) {
	return r.LoadWithSystem(ctx, id, nil)
}

// LoadWithSystem retrieves a control system and attaches host instead of loading it.
// A nil host falls back to loading.
func (r *ControlSystemRepository) LoadWithSystem(ctx context.Context, id int, host *system.System) (*controlsystem.ControlSystem, error) {
	data, err := r.api.GetControlSystem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load control system %d: %w", id, err)
	}
	return controlsystem.New(ctx, data, host, r.systems)
}

// Search retrieves the control systems with the given ids, each with its host system.
// If any host cannot be resolved the whole search fails.
func (r *ControlSystemRepository) Search(ctx context.Context, ids []int) ([]*controlsystem.ControlSystem, error) {
	if len(ids) == 0 {
		return nil, shared.NewValidationError("ids", "at least one id is required")
	}

	data, err := r.api.SearchControlSystems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to search control systems: %w", err)
	}

	result := make([]*controlsystem.ControlSystem, 0, len(data))
	for _, d := range data {
		cs, err := controlsystem.New(ctx, d, nil, r.systems)
		if err != nil {
			return nil, err
		}
		result = append(result, cs)
	}
	return result, nil
}
