package api

import (
	"context"
	"fmt"

	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	domainPorts "github.com/andrescamacho/traikoa-go/internal/domain/ports"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/config"
)

var _ cmdr.Repository = (*CmdrRepository)(nil)

// CmdrRepository implements cmdr.Repository on top of the cmdrs namespace
type CmdrRepository struct {
	api       domainPorts.CmdrsAPI
	validator *config.Validator
}

// NewCmdrRepository creates a new API-backed cmdr repository
func NewCmdrRepository(api domainPorts.CmdrsAPI) *CmdrRepository {
	return &CmdrRepository{
		api:       api,
		validator: config.NewValidator(),
	}
}

// Load retrieves a cmdr by Discord id
func (r *CmdrRepository) Load(ctx context.Context, discordID int64) (*cmdr.Cmdr, error) {
	data, err := r.api.GetCmdr(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cmdr %d: %w", discordID, err)
	}
	return cmdr.FromData(data), nil
}

// Register posts the cmdr's current fields and returns what the API confirmed.
// c is only read; the confirmed state comes back as a separate Cmdr.
func (r *CmdrRepository) Register(ctx context.Context, c *cmdr.Cmdr) (*cmdr.Registration, error) {
	if c == nil {
		return nil, shared.NewValidationError("cmdr", "cannot be nil")
	}

	payload := c.Data()
	if err := r.validator.Validate(payload); err != nil {
		return nil, err
	}

	data, err := r.api.PostCmdr(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to register cmdr %d: %w", c.DiscordID(), err)
	}

	return &cmdr.Registration{
		Submitted: cmdr.New(payload.DiscordID, payload.DiscordName, payload.SystemID, payload.PowerID),
		Confirmed: cmdr.FromData(data),
	}, nil
}
