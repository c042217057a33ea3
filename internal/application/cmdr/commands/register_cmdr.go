package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/traikoa-go/internal/application/mediator"
	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/logging"
)

// RegisterCmdrCommand represents a command to register a cmdr with the Traikoa API
type RegisterCmdrCommand struct {
	DiscordID   int64
	DiscordName string
	SystemID    *int // Optional: system the cmdr is in
	PowerID     *int // Optional: power the cmdr is pledged to
}

// RegisterCmdrResponse represents the result of registering a cmdr
type RegisterCmdrResponse struct {
	// Local is the cmdr built from the command; it stays unregistered
	Local        *cmdr.Cmdr
	Registration *cmdr.Registration
	RecordID     int
}

// RegisterCmdrHandler handles the RegisterCmdr command
type RegisterCmdrHandler struct {
	cmdrs  cmdr.Repository
	ledger cmdr.RegistrationLedger
	clock  shared.Clock
}

// NewRegisterCmdrHandler creates a new RegisterCmdrHandler.
// ledger may be nil, in which case outcomes are not recorded.
func NewRegisterCmdrHandler(cmdrs cmdr.Repository, ledger cmdr.RegistrationLedger, clock shared.Clock) *RegisterCmdrHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &RegisterCmdrHandler{
		cmdrs:  cmdrs,
		ledger: ledger,
		clock:  clock,
	}
}

// Handle executes the RegisterCmdr command.
// When the server confirms the registration but the ledger write fails, the
// response is returned together with the ledger error.
func (h *RegisterCmdrHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RegisterCmdrCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RegisterCmdrCommand")
	}

	log := logging.FromContext(ctx).With(logging.Int64("discord_id", cmd.DiscordID))
	local := cmdr.New(cmd.DiscordID, cmd.DiscordName, cmd.SystemID, cmd.PowerID)

	registration, err := h.cmdrs.Register(ctx, local)
	if err != nil {
		record := h.newRecord(local, cmdr.RegistrationFailed)
		record.Error = err.Error()
		if ledgerErr := h.record(ctx, record); ledgerErr != nil {
			log.Warn(ctx, "failed to record failed registration", logging.Err(ledgerErr))
		}
		return nil, fmt.Errorf("failed to register cmdr: %w", err)
	}

	response := &RegisterCmdrResponse{
		Local:        local,
		Registration: registration,
	}

	record := h.newRecord(registration.Confirmed, cmdr.RegistrationSucceeded)
	if err := h.record(ctx, record); err != nil {
		log.Error(ctx, "cmdr registered but outcome was not recorded", logging.Err(err))
		return response, fmt.Errorf("failed to record registration: %w", err)
	}
	response.RecordID = record.ID

	log.Info(ctx, "cmdr registered", logging.String("discord_name", registration.Confirmed.DiscordName()))

	return response, nil
}

func (h *RegisterCmdrHandler) newRecord(c *cmdr.Cmdr, status cmdr.RegistrationStatus) *cmdr.RegistrationRecord {
	data := c.Data()
	return &cmdr.RegistrationRecord{
		DiscordID:   data.DiscordID,
		DiscordName: data.DiscordName,
		SystemID:    data.SystemID,
		PowerID:     data.PowerID,
		Status:      status,
		RecordedAt:  h.clock.Now(),
	}
}

func (h *RegisterCmdrHandler) record(ctx context.Context, record *cmdr.RegistrationRecord) error {
	if h.ledger == nil {
		return nil
	}
	return h.ledger.Record(ctx, record)
}
