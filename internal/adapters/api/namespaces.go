package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
	"github.com/andrescamacho/traikoa-go/internal/domain/power"
	"github.com/andrescamacho/traikoa-go/internal/domain/ports"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// Route templates, used as metric labels and span names
const (
	endpointSystem        = "systems/{id}"
	endpointSystemSearch  = "systems/search"
	endpointSystemBubble  = "systems/bubble"
	endpointControlSystem = "control_systems/{id}"
	endpointControlSearch = "control_systems/search"
	endpointPower         = "powers/{id}"
	endpointPowers        = "powers"
	endpointCmdr          = "cmdrs/{id}"
	endpointCmdrs         = "cmdrs"
	idsParam              = "ids[]"
	nameParam             = "name"
	radiusParam           = "radius"
	querySystemIDParam    = "id"
)

var (
	_ ports.SystemsAPI        = (*SystemsNamespace)(nil)
	_ ports.ControlSystemsAPI = (*ControlSystemsNamespace)(nil)
	_ ports.PowersAPI         = (*PowersNamespace)(nil)
	_ ports.CmdrsAPI          = (*CmdrsNamespace)(nil)
)

// completable is implemented by every response DTO
type completable interface {
	Complete() error
}

// namespace binds a client to one resource prefix
type namespace struct {
	client *TraikoaClient
}

func (n namespace) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	return n.client.request(ctx, http.MethodGet, endpoint, path, query, nil, out)
}

func (n namespace) post(ctx context.Context, endpoint, path string, payload, out any) error {
	return n.client.request(ctx, http.MethodPost, endpoint, path, nil, payload, out)
}

// checkOne turns an incomplete DTO into a DecodeError
func (n namespace) checkOne(method, path string, dto completable) error {
	if err := dto.Complete(); err != nil {
		return &DecodeError{Method: method, URL: n.client.URL(path), Err: err}
	}
	return nil
}

func checkAll[T completable](n namespace, method, path string, dtos []T) error {
	for i, dto := range dtos {
		if err := dto.Complete(); err != nil {
			return &DecodeError{
				Method: method,
				URL:    n.client.URL(path),
				Err:    fmt.Errorf("element %d: %w", i, err),
			}
		}
	}
	return nil
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

func idsQuery(ids []int) url.Values {
	query := url.Values{}
	for _, id := range ids {
		query.Add(idsParam, strconv.Itoa(id))
	}
	return query
}

// Systems returns the systems namespace
func (c *TraikoaClient) Systems() *SystemsNamespace {
	return &SystemsNamespace{namespace{client: c}}
}

// ControlSystems returns the control_systems namespace
func (c *TraikoaClient) ControlSystems() *ControlSystemsNamespace {
	return &ControlSystemsNamespace{namespace{client: c}}
}

// Powers returns the powers namespace
func (c *TraikoaClient) Powers() *PowersNamespace {
	return &PowersNamespace{namespace{client: c}}
}

// Cmdrs returns the cmdrs namespace
func (c *TraikoaClient) Cmdrs() *CmdrsNamespace {
	return &CmdrsNamespace{namespace{client: c}}
}

// SystemsNamespace wraps GET systems/{id}, systems/search and systems/bubble
type SystemsNamespace struct {
	namespace
}

// GetSystem fetches GET systems/{id}
func (n *SystemsNamespace) GetSystem(ctx context.Context, id int) (*system.SystemData, error) {
	path := idPath("systems", int64(id))
	var data system.SystemData
	if err := n.get(ctx, endpointSystem, path, nil, &data); err != nil {
		return nil, err
	}
	if err := n.checkOne(http.MethodGet, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SearchSystems fetches GET systems/search with either name or ids[]
func (n *SystemsNamespace) SearchSystems(ctx context.Context, by system.SearchBy) ([]*system.SystemData, error) {
	if err := by.Validate(); err != nil {
		return nil, err
	}

	var query url.Values
	switch by.Kind() {
	case system.SearchKindName:
		query = url.Values{nameParam: []string{by.Name()}}
	case system.SearchKindIDs:
		query = idsQuery(by.IDs())
	}

	path := "systems/search"
	var data []*system.SystemData
	if err := n.get(ctx, endpointSystemSearch, path, query, &data); err != nil {
		return nil, err
	}
	if err := checkAll(n.namespace, http.MethodGet, path, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Bubble fetches GET systems/bubble?id=&radius=
func (n *SystemsNamespace) Bubble(ctx context.Context, id int, radius float64) ([]*system.SystemData, error) {
	query := url.Values{
		querySystemIDParam: []string{strconv.Itoa(id)},
		radiusParam:        []string{strconv.FormatFloat(radius, 'f', -1, 64)},
	}

	path := "systems/bubble"
	var data []*system.SystemData
	if err := n.get(ctx, endpointSystemBubble, path, query, &data); err != nil {
		return nil, err
	}
	if err := checkAll(n.namespace, http.MethodGet, path, data); err != nil {
		return nil, err
	}
	return data, nil
}

// ControlSystemsNamespace wraps GET control_systems/{id} and control_systems/search
type ControlSystemsNamespace struct {
	namespace
}

// GetControlSystem fetches GET control_systems/{id}
func (n *ControlSystemsNamespace) GetControlSystem(ctx context.Context, id int) (*controlsystem.ControlSystemData, error) {
	path := idPath("control_systems", int64(id))
	var data controlsystem.ControlSystemData
	if err := n.get(ctx, endpointControlSystem, path, nil, &data); err != nil {
		return nil, err
	}
	if err := n.checkOne(http.MethodGet, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SearchControlSystems fetches GET control_systems/search?ids[]=
func (n *ControlSystemsNamespace) SearchControlSystems(ctx context.Context, ids []int) ([]*controlsystem.ControlSystemData, error) {
	path := "control_systems/search"
	var data []*controlsystem.ControlSystemData
	if err := n.get(ctx, endpointControlSearch, path, idsQuery(ids), &data); err != nil {
		return nil, err
	}
	if err := checkAll(n.namespace, http.MethodGet, path, data); err != nil {
		return nil, err
	}
	return data, nil
}

// PowersNamespace wraps GET powers/{id} and GET powers
type PowersNamespace struct {
	namespace
}

// GetPower fetches GET powers/{id}
func (n *PowersNamespace) GetPower(ctx context.Context, id int) (*power.PowerData, error) {
	path := idPath("powers", int64(id))
	var data power.PowerData
	if err := n.get(ctx, endpointPower, path, nil, &data); err != nil {
		return nil, err
	}
	if err := n.checkOne(http.MethodGet, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ListPowers fetches GET powers
func (n *PowersNamespace) ListPowers(ctx context.Context) ([]*power.PowerData, error) {
	path := "powers"
	var data []*power.PowerData
	if err := n.get(ctx, endpointPowers, path, nil, &data); err != nil {
		return nil, err
	}
	if err := checkAll(n.namespace, http.MethodGet, path, data); err != nil {
		return nil, err
	}
	return data, nil
}

// CmdrsNamespace wraps GET cmdrs/{discord_id} and POST cmdrs
type CmdrsNamespace struct {
	namespace
}

// GetCmdr fetches GET cmdrs/{discord_id}
func (n *CmdrsNamespace) GetCmdr(ctx context.Context, discordID int64) (*cmdr.CmdrData, error) {
	path := idPath("cmdrs", discordID)
	var data cmdr.CmdrData
	if err := n.get(ctx, endpointCmdr, path, nil, &data); err != nil {
		return nil, err
	}
	if err := n.checkOne(http.MethodGet, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// PostCmdr sends POST cmdrs and returns the server's view of the cmdr
func (n *CmdrsNamespace) PostCmdr(ctx context.Context, payload *cmdr.CmdrData) (*cmdr.CmdrData, error) {
	path := "cmdrs"
	var data cmdr.CmdrData
	if err := n.post(ctx, endpointCmdrs, path, payload, &data); err != nil {
		return nil, err
	}
	if err := n.checkOne(http.MethodPost, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
