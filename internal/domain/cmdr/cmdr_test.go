package cmdr_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
)

func TestNew_IsUnregistered(t *testing.T) {
	systemID := 7
	c := cmdr.New(42, "jameson", &systemID, nil)
	systemID = 8

	assert.Equal(t, cmdr.StateUnregistered, c.State())
	assert.False(t, c.Registered())
	got, ok := c.SystemID()
	require.True(t, ok)
	assert.Equal(t, 7, got)
	_, ok = c.PowerID()
	assert.False(t, ok)
}

func TestFromData_IsRegistered(t *testing.T) {
	powerID := 3
	c := cmdr.FromData(&cmdr.CmdrData{DiscordID: 42, DiscordName: "jameson", PowerID: &powerID})

	assert.True(t, c.Registered())
	got, ok := c.PowerID()
	require.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestData_EncodesUnsetIDsAsNull(t *testing.T) {
	// Arrange
	c := cmdr.New(42, "jameson", nil, nil)

	// Act
	body, err := json.Marshal(c.Data())

	// Assert
	require.NoError(t, err)
	assert.JSONEq(t, `{"discord_id":42,"discord_name":"jameson","system_id":null,"power_id":null}`, string(body))
}

func TestData_IsACopy(t *testing.T) {
	systemID := 7
	c := cmdr.New(42, "jameson", &systemID, nil)

	data := c.Data()
	*data.SystemID = 99

	got, _ := c.SystemID()
	assert.Equal(t, 7, got)
}

func TestCmdrData_Complete(t *testing.T) {
	assert.NoError(t, (&cmdr.CmdrData{DiscordID: 1}).Complete())
	assert.Error(t, (&cmdr.CmdrData{DiscordName: "anon"}).Complete())
}
