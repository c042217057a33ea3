package cmdr

import (
	"fmt"
)

// State is where a Cmdr stands relative to the remote store
type State string

const (
	// StateUnregistered is a Cmdr built locally and not yet confirmed by the API
	StateUnregistered State = "unregistered"
	// StateRegistered is a Cmdr decoded from an API response
	StateRegistered State = "registered"
)

// Cmdr is a player persona identified by their Discord account
type Cmdr struct {
	discordID   int64
	discordName string
	systemID    *int
	powerID     *int
	state       State
}

// New creates an unregistered Cmdr. systemID and powerID may be nil when unknown.
func New(discordID int64, discordName string, systemID, powerID *int) *Cmdr {
	return &Cmdr{
		discordID:   discordID,
		discordName: discordName,
		systemID:    copyID(systemID),
		powerID:     copyID(powerID),
		state:       StateUnregistered,
	}
}

// FromData builds a registered Cmdr from a decoded API payload
func FromData(data *CmdrData) *Cmdr {
	c := New(data.DiscordID, data.DiscordName, data.SystemID, data.PowerID)
	c.state = StateRegistered
	return c
}

func (c *Cmdr) DiscordID() int64    { return c.discordID }
func (c *Cmdr) DiscordName() string { return c.discordName }
func (c *Cmdr) State() State        { return c.state }

// Registered reports whether this snapshot was confirmed by the API
func (c *Cmdr) Registered() bool { return c.state == StateRegistered }

// SystemID returns the system the cmdr is located in, if known
func (c *Cmdr) SystemID() (int, bool) {
	if c.systemID == nil {
		return 0, false
	}
	return *c.systemID, true
}

// PowerID returns the power the cmdr is pledged to, if known
func (c *Cmdr) PowerID() (int, bool) {
	if c.powerID == nil {
		return 0, false
	}
	return *c.powerID, true
}

// Data returns the wire payload for this cmdr. Unknown ids stay nil so they
// encode as explicit JSON nulls.
func (c *Cmdr) Data() *CmdrData {
	return &CmdrData{
		DiscordID:   c.discordID,
		DiscordName: c.discordName,
		SystemID:    copyID(c.systemID),
		PowerID:     copyID(c.powerID),
	}
}

func (c *Cmdr) String() string {
	return fmt.Sprintf("Cmdr(%d %s, %s)", c.discordID, c.discordName, c.state)
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

// CmdrData is the wire shape of a cmdr, used both for responses and the registration body.
// Fields carry no omitempty: the API expects all four keys.
type CmdrData struct {
	DiscordID   int64  `json:"discord_id" validate:"required,gt=0"`
	DiscordName string `json:"discord_name" validate:"required"`
	SystemID    *int   `json:"system_id" validate:"omitempty,gt=0"`
	PowerID     *int   `json:"power_id" validate:"omitempty,gt=0"`
}

// Complete reports the first required field missing from the payload
func (d *CmdrData) Complete() error {
	if d == nil {
		return fmt.Errorf("cmdr payload is null")
	}
	if d.DiscordID == 0 {
		return fmt.Errorf("cmdr payload is missing discord_id")
	}
	return nil
}

// Registration is the outcome of registering a Cmdr: the snapshot that was sent
// and the state the API confirmed. Applying Confirmed is left to the caller.
type Registration struct {
	Submitted *Cmdr
	Confirmed *Cmdr
}
