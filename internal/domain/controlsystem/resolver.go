package controlsystem

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// New builds a ControlSystem from a decoded payload and attaches its host system.
//
// When host is non-nil it is used as is and no request is made; otherwise the
// system is fetched through loader. Either way the host id must equal
// data.SystemID, or construction fails with a *shared.IntegrityError and no
// ControlSystem is returned. An incomplete payload is a *shared.DecodeError.
func New(ctx context.Context, data *ControlSystemData, host *system.System, loader system.Loader) (*ControlSystem, error) {
	if err := data.Complete(); err != nil {
		return nil, shared.NewDecodeError("control_system", err)
	}

	host, err := resolveHost(ctx, data.SystemID, host, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve system %d for control system %d: %w", data.SystemID, data.ID, err)
	}

	if host.ID() != data.SystemID {
		return nil, shared.NewIntegrityError(data.ID, data.SystemID, host.ID())
	}

	return &ControlSystem{
		id:            data.ID,
		powerID:       data.PowerID,
		systemID:      data.SystemID,
		controlData:   maps.Clone(data.ControlData),
		exploitations: slices.Clone(data.Exploitations),
		system:        host,
	}, nil
}

// resolveHost returns the supplied system or loads it by id
func resolveHost(ctx context.Context, systemID int, supplied *system.System, loader system.Loader) (*system.System, error) {
	if supplied != nil {
		return supplied, nil
	}
	if loader == nil {
		return nil, shared.NewValidationError("loader", "required when no system is supplied")
	}

	host, err := loader.Load(ctx, systemID)
	if err != nil {
		return nil, err
	}
	if host == nil {
		return nil, shared.NewDomainError(fmt.Sprintf("loader returned no system for id %d", systemID))
	}
	return host, nil
}
