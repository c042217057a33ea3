package helpers

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/andrescamacho/traikoa-go/internal/adapters/api"
	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
	"github.com/andrescamacho/traikoa-go/internal/domain/power"
	domainPorts "github.com/andrescamacho/traikoa-go/internal/domain/ports"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

var (
	_ domainPorts.SystemsAPI        = (*MockAPIClient)(nil)
	_ domainPorts.ControlSystemsAPI = (*MockAPIClient)(nil)
	_ domainPorts.PowersAPI         = (*MockAPIClient)(nil)
	_ domainPorts.CmdrsAPI          = (*MockAPIClient)(nil)
)

// MockAPIClient is an in-memory Traikoa API implementing every namespace port
type MockAPIClient struct {
	mu sync.RWMutex

	systems        map[int]*system.SystemData
	controlSystems map[int]*controlsystem.ControlSystemData
	powers         map[int]*power.PowerData
	cmdrs          map[int64]*cmdr.CmdrData

	// Call tracking, keyed by method name
	calls       map[string]int
	lastRadius  float64
	postedCmdrs []*cmdr.CmdrData

	// Error injection, keyed by method name
	errors map[string]error

	postCmdrFunc func(ctx context.Context, payload *cmdr.CmdrData) (*cmdr.CmdrData, error)
}

// NewMockAPIClient creates an empty mock API
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{
		systems:        make(map[int]*system.SystemData),
		controlSystems: make(map[int]*controlsystem.ControlSystemData),
		powers:         make(map[int]*power.PowerData),
		cmdrs:          make(map[int64]*cmdr.CmdrData),
		calls:          make(map[string]int),
		errors:         make(map[string]error),
	}
}

// AddSystem stores a system payload
func (m *MockAPIClient) AddSystem(data *system.SystemData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.systems[data.ID] = data
}

// AddControlSystem stores a control system payload
func (m *MockAPIClient) AddControlSystem(data *controlsystem.ControlSystemData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.controlSystems[data.ID] = data
}

// AddPower stores a power payload
func (m *MockAPIClient) AddPower(data *power.PowerData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.powers[data.ID] = data
}

// AddCmdr stores a cmdr payload
func (m *MockAPIClient) AddCmdr(data *cmdr.CmdrData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cmdrs[data.DiscordID] = data
}

// SetError makes every call to method fail with err
func (m *MockAPIClient) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[method] = err
}

// SetPostCmdrFunc overrides the default PostCmdr behavior
func (m *MockAPIClient) SetPostCmdrFunc(fn func(ctx context.Context, payload *cmdr.CmdrData) (*cmdr.CmdrData, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.postCmdrFunc = fn
}

// Calls returns how many times method was invoked
func (m *MockAPIClient) Calls(method string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[method]
}

// LastRadius returns the radius of the latest Bubble call
func (m *MockAPIClient) LastRadius() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastRadius
}

// PostedCmdrs returns the payloads received by PostCmdr
func (m *MockAPIClient) PostedCmdrs() []*cmdr.CmdrData {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.postedCmdrs)
}

// track records a call and returns the injected error, if any. Callers hold m.mu.
func (m *MockAPIClient) track(method string) error {
	m.calls[method]++
	return m.errors[method]
}

// GetSystem implements SystemsAPI
func (m *MockAPIClient) GetSystem(ctx context.Context, id int) (*system.SystemData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("GetSystem"); err != nil {
		return nil, err
	}

	data, ok := m.systems[id]
	if !ok {
		return nil, notFound(fmt.Sprintf("systems/%d", id))
	}
	return data, nil
}

// SearchSystems implements SystemsAPI. Names match case-insensitively by substring.
func (m *MockAPIClient) SearchSystems(ctx context.Context, by system.SearchBy) ([]*system.SystemData, error) {
	if err := by.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("SearchSystems"); err != nil {
		return nil, err
	}

	var result []*system.SystemData
	switch by.Kind() {
	case system.SearchKindName:
		needle := strings.ToLower(by.Name())
		for _, data := range m.sortedSystems() {
			if strings.Contains(strings.ToLower(data.Name), needle) {
				result = append(result, data)
			}
		}
	case system.SearchKindIDs:
		for _, id := range by.IDs() {
			if data, ok := m.systems[id]; ok {
				result = append(result, data)
			}
		}
	}
	return result, nil
}

// Bubble implements SystemsAPI, returning every other system within radius
func (m *MockAPIClient) Bubble(ctx context.Context, id int, radius float64) ([]*system.SystemData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRadius = radius
	if err := m.track("Bubble"); err != nil {
		return nil, err
	}

	center, ok := m.systems[id]
	if !ok {
		return nil, notFound(fmt.Sprintf("systems/bubble?id=%d", id))
	}

	from := positionOf(center)
	var result []*system.SystemData
	for _, data := range m.sortedSystems() {
		if data.ID == id {
			continue
		}
		if shared.Distance(from, positionOf(data)) <= radius {
			result = append(result, data)
		}
	}
	return result, nil
}

// GetControlSystem implements ControlSystemsAPI
func (m *MockAPIClient) GetControlSystem(ctx context.Context, id int) (*controlsystem.ControlSystemData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("GetControlSystem"); err != nil {
		return nil, err
	}

	data, ok := m.controlSystems[id]
	if !ok {
		return nil, notFound(fmt.Sprintf("control_systems/%d", id))
	}
	return data, nil
}

// SearchControlSystems implements ControlSystemsAPI
func (m *MockAPIClient) SearchControlSystems(ctx context.Context, ids []int) ([]*controlsystem.ControlSystemData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("SearchControlSystems"); err != nil {
		return nil, err
	}

	var result []*controlsystem.ControlSystemData
	for _, id := range ids {
		if data, ok := m.controlSystems[id]; ok {
			result = append(result, data)
		}
	}
	return result, nil
}

// GetPower implements PowersAPI
func (m *MockAPIClient) GetPower(ctx context.Context, id int) (*power.PowerData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("GetPower"); err != nil {
		return nil, err
	}

	data, ok := m.powers[id]
	if !ok {
		return nil, notFound(fmt.Sprintf("powers/%d", id))
	}
	return data, nil
}

// ListPowers implements PowersAPI, ordered by id
func (m *MockAPIClient) ListPowers(ctx context.Context) ([]*power.PowerData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("ListPowers"); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(m.powers))
	for id := range m.powers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	result := make([]*power.PowerData, 0, len(ids))
	for _, id := range ids {
		result = append(result, m.powers[id])
	}
	return result, nil
}

// GetCmdr implements CmdrsAPI
func (m *MockAPIClient) GetCmdr(ctx context.Context, discordID int64) (*cmdr.CmdrData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("GetCmdr"); err != nil {
		return nil, err
	}

	data, ok := m.cmdrs[discordID]
	if !ok {
		return nil, notFound(fmt.Sprintf("cmdrs/%d", discordID))
	}
	return data, nil
}

// PostCmdr implements CmdrsAPI. By default the payload is stored and echoed back.
func (m *MockAPIClient) PostCmdr(ctx context.Context, payload *cmdr.CmdrData) (*cmdr.CmdrData, error) {
	m.mu.Lock()
	m.postedCmdrs = append(m.postedCmdrs, payload)
	err := m.track("PostCmdr")
	fn := m.postCmdrFunc
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if fn != nil {
		return fn(ctx, payload)
	}

	stored := *payload
	m.AddCmdr(&stored)
	return &stored, nil
}

// sortedSystems returns the stored systems ordered by id. Callers hold m.mu.
func (m *MockAPIClient) sortedSystems() []*system.SystemData {
	ids := make([]int, 0, len(m.systems))
	for id := range m.systems {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	result := make([]*system.SystemData, 0, len(ids))
	for _, id := range ids {
		result = append(result, m.systems[id])
	}
	return result
}

func positionOf(data *system.SystemData) shared.Position {
	if data.Position == nil {
		return shared.NewPosition(0, 0, 0)
	}
	return shared.NewPosition(data.Position.X, data.Position.Y, data.Position.Z)
}

func notFound(path string) error {
	return &api.NotFoundError{HTTPStatusError: &api.HTTPStatusError{
		Method: http.MethodGet,
		URL:    "mock://v1/" + path,
		Code:   http.StatusNotFound,
	}}
}
