package cmdr

import (
	"context"
	"errors"
	"time"
)

// ErrNoRegistration is returned by the ledger when nothing was recorded for a cmdr
var ErrNoRegistration = errors.New("no registration recorded")

// Repository loads and registers cmdrs through the Traikoa API
type Repository interface {
	Load(ctx context.Context, discordID int64) (*Cmdr, error)

	// Register sends the cmdr's current fields and returns the confirmed state.
	// The given cmdr is never modified.
	Register(ctx context.Context, c *Cmdr) (*Registration, error)
}

// RegistrationStatus is the outcome recorded for a registration attempt
type RegistrationStatus string

const (
	RegistrationSucceeded RegistrationStatus = "registered"
	RegistrationFailed    RegistrationStatus = "failed"
)

// RegistrationRecord is one registration attempt kept by the local ledger
type RegistrationRecord struct {
	ID          int
	DiscordID   int64
	DiscordName string
	SystemID    *int
	PowerID     *int
	Status      RegistrationStatus
	Error       string
	RecordedAt  time.Time
}

// RegistrationLedger persists registration outcomes locally
type RegistrationLedger interface {
	// Record assigns record.ID
	Record(ctx context.Context, record *RegistrationRecord) error
	FindLatestByDiscordID(ctx context.Context, discordID int64) (*RegistrationRecord, error)
	ListByDiscordID(ctx context.Context, discordID int64) ([]*RegistrationRecord, error)
}
