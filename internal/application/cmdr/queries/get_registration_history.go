package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/traikoa-go/internal/application/mediator"
	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
)

// GetRegistrationHistoryQuery lists the recorded registration attempts of a cmdr
type GetRegistrationHistoryQuery struct {
	DiscordID int64
}

// GetRegistrationHistoryResponse holds the attempts, oldest first
type GetRegistrationHistoryResponse struct {
	Records []*cmdr.RegistrationRecord
}

// GetRegistrationHistoryHandler handles the GetRegistrationHistory query
type GetRegistrationHistoryHandler struct {
	ledger cmdr.RegistrationLedger
}

// NewGetRegistrationHistoryHandler creates a new GetRegistrationHistoryHandler
func NewGetRegistrationHistoryHandler(ledger cmdr.RegistrationLedger) *GetRegistrationHistoryHandler {
	return &GetRegistrationHistoryHandler{ledger: ledger}
}

// Handle executes the GetRegistrationHistory query
func (h *GetRegistrationHistoryHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetRegistrationHistoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetRegistrationHistoryQuery")
	}

	if query.DiscordID <= 0 {
		return nil, shared.NewValidationError("discord_id", "must be positive")
	}

	records, err := h.ledger.ListByDiscordID(ctx, query.DiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	return &GetRegistrationHistoryResponse{Records: records}, nil
}
