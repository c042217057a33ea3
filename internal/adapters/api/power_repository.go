package api

import (
	"context"
	"fmt"

	"github.com/andrescamacho/traikoa-go/internal/domain/power"
	domainPorts "github.com/andrescamacho/traikoa-go/internal/domain/ports"
)

var _ power.Repository = (*PowerRepository)(nil)

// PowerRepository implements power.Repository on top of the powers namespace
type PowerRepository struct {
	api domainPorts.PowersAPI
}

// NewPowerRepository creates a new API-backed power repository
func NewPowerRepository(api domainPorts.PowersAPI) *PowerRepository {
	return &PowerRepository{api: api}
}

// Load retrieves a power by id
func (r *PowerRepository) Load(ctx context.Context, id int) (*power.Power, error) {
	data, err := r.api.GetPower(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load power %d: %w", id, err)
	}
	return power.FromData(data), nil
}

// List retrieves every power
func (r *PowerRepository) List(ctx context.Context) ([]*power.Power, error) {
	data, err := r.api.ListPowers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list powers: %w", err)
	}

	powers := make([]*power.Power, 0, len(data))
	for _, d := range data {
		powers = append(powers, power.FromData(d))
	}
	return powers, nil
}
