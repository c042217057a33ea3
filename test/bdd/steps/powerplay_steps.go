package steps

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/traikoa-go/internal/adapters/api"
	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
	"github.com/andrescamacho/traikoa-go/test/helpers"
)

type powerplayContext struct {
	api            *helpers.MockAPIClient
	systems        *api.SystemRepository
	controlSystems *api.ControlSystemRepository
	cmdrs          *api.CmdrRepository

	controlSystem *controlsystem.ControlSystem
	found         []*system.System
	local         *cmdr.Cmdr
	registration  *cmdr.Registration
	err           error
}

func (pc *powerplayContext) reset() {
	pc.api = helpers.NewMockAPIClient()
	pc.systems = api.NewSystemRepository(pc.api)
	pc.controlSystems = api.NewControlSystemRepository(pc.api, pc.systems)
	pc.cmdrs = api.NewCmdrRepository(pc.api)
	pc.controlSystem = nil
	pc.found = nil
	pc.local = nil
	pc.registration = nil
	pc.err = nil
}

// ============================================================================
// Given Steps
// ============================================================================

func (pc *powerplayContext) theAPIKnowsTheseSystems(table *godog.Table) error {
	for _, row := range dataRows(table) {
		id, err := parseIntCell(table, row, "id")
		if err != nil {
			return err
		}
		x, err := parseFloatCell(table, row, "x")
		if err != nil {
			return err
		}
		y, err := parseFloatCell(table, row, "y")
		if err != nil {
			return err
		}
		z, err := parseFloatCell(table, row, "z")
		if err != nil {
			return err
		}
		pc.api.AddSystem(helpers.CreateTestSystemData(id, getCellValue(table, row, "name"), x, y, z))
	}
	return nil
}

func (pc *powerplayContext) theAPIKnowsControlSystemOfPowerHostedBySystem(id, powerID, systemID int) error {
	pc.api.AddControlSystem(helpers.CreateTestControlSystemData(id, powerID, systemID))
	return nil
}

// ============================================================================
// When Steps
// ============================================================================

func (pc *powerplayContext) iLoadControlSystem(id int) error {
	pc.controlSystem, pc.err = pc.controlSystems.Load(context.Background(), id)
	return nil
}

func (pc *powerplayContext) iLoadControlSystemWithSystem(id, systemID int) error {
	host, err := pc.systems.Load(context.Background(), systemID)
	if err != nil {
		return fmt.Errorf("failed to load host system %d: %w", systemID, err)
	}
	calls := pc.api.Calls("GetSystem")

	pc.controlSystem, pc.err = pc.controlSystems.LoadWithSystem(context.Background(), id, host)
	if extra := pc.api.Calls("GetSystem") - calls; extra != 0 {
		return fmt.Errorf("expected no extra system lookups, got %d", extra)
	}
	return nil
}

func (pc *powerplayContext) iSearchControlSystemsByIDs(list string) error {
	ids, err := parseIDList(list)
	if err != nil {
		return err
	}
	_, pc.err = pc.controlSystems.Search(context.Background(), ids)
	return nil
}

func (pc *powerplayContext) iSearchSystemsByName(name string) error {
	pc.found, pc.err = pc.systems.Search(context.Background(), system.ByName(name))
	return nil
}

func (pc *powerplayContext) iSearchSystemsByIDs(list string) error {
	ids, err := parseIDList(list)
	if err != nil {
		return err
	}
	pc.found, pc.err = pc.systems.Search(context.Background(), system.ByIDs(ids...))
	return nil
}

func (pc *powerplayContext) iSearchSystemsWithoutCriterion() error {
	pc.found, pc.err = pc.systems.Search(context.Background(), system.SearchBy{})
	return nil
}

func (pc *powerplayContext) iRequestTheBubbleAroundSystem(id int) error {
	pc.found, pc.err = pc.systems.Bubble(context.Background(), id)
	return nil
}

func (pc *powerplayContext) iRequestTheBubbleAroundSystemWithRadius(id int, radius float64) error {
	pc.found, pc.err = pc.systems.Bubble(context.Background(), id, system.WithRadius(radius))
	return nil
}

func (pc *powerplayContext) iRegisterCmdrNamedWithoutSystemOrPower(discordID int64, name string) error {
	pc.local = cmdr.New(discordID, name, nil, nil)
	pc.registration, pc.err = pc.cmdrs.Register(context.Background(), pc.local)
	return nil
}

func (pc *powerplayContext) theServerConfirmsSystemAndPower(systemID, powerID int) error {
	pc.api.SetPostCmdrFunc(func(ctx context.Context, payload *cmdr.CmdrData) (*cmdr.CmdrData, error) {
		confirmed := *payload
		confirmed.SystemID = &systemID
		confirmed.PowerID = &powerID
		return &confirmed, nil
	})
	return nil
}

// ============================================================================
// Then Steps
// ============================================================================

func (pc *powerplayContext) theControlSystemShouldBeNamed(name string) error {
	if pc.err != nil {
		return fmt.Errorf("expected success, got: %w", pc.err)
	}
	if pc.controlSystem.Name() != name {
		return fmt.Errorf("expected control system named %q, got %q", name, pc.controlSystem.Name())
	}
	return nil
}

func (pc *powerplayContext) theControlSystemShouldBeHostedBySystem(systemID int) error {
	if pc.controlSystem == nil {
		return fmt.Errorf("no control system loaded: %v", pc.err)
	}
	if pc.controlSystem.System().ID() != systemID {
		return fmt.Errorf("expected host system %d, got %d", systemID, pc.controlSystem.System().ID())
	}
	return nil
}

func (pc *powerplayContext) theControlSystemShouldBeLightYearsFromSystem(distance float64, systemID int) error {
	other, err := pc.systems.Load(context.Background(), systemID)
	if err != nil {
		return err
	}
	actual := pc.controlSystem.DistanceTo(other)
	if math.Abs(actual-distance) > 0.01 {
		return fmt.Errorf("expected %.2f ly, got %.2f ly", distance, actual)
	}
	return nil
}

func (pc *powerplayContext) theOperationShouldFailWithAnIntegrityErrorExpectingSystemButGot(expected, actual int) error {
	var integrityErr *shared.IntegrityError
	if !errors.As(pc.err, &integrityErr) {
		return fmt.Errorf("expected integrity error, got: %v", pc.err)
	}
	if integrityErr.ExpectedSystemID != expected || integrityErr.ActualSystemID != actual {
		return fmt.Errorf("expected system %d but got %d, error reports %d and %d",
			expected, actual, integrityErr.ExpectedSystemID, integrityErr.ActualSystemID)
	}
	if pc.controlSystem != nil {
		return fmt.Errorf("expected no control system on integrity failure")
	}
	return nil
}

func (pc *powerplayContext) theOperationShouldFailWithNotFound() error {
	if !api.IsNotFound(pc.err) {
		return fmt.Errorf("expected not found error, got: %v", pc.err)
	}
	return nil
}

func (pc *powerplayContext) theOperationShouldFailWithAValidationErrorOn(field string) error {
	var validationErr *shared.ValidationError
	if !errors.As(pc.err, &validationErr) {
		return fmt.Errorf("expected validation error, got: %v", pc.err)
	}
	if validationErr.Field != field {
		return fmt.Errorf("expected validation error on %q, got %q", field, validationErr.Field)
	}
	return nil
}

func (pc *powerplayContext) theResultShouldContainTheseSystemsInOrder(table *godog.Table) error {
	if pc.err != nil {
		return fmt.Errorf("expected success, got: %w", pc.err)
	}

	rows := dataRows(table)
	if len(rows) != len(pc.found) {
		return fmt.Errorf("expected %d systems, got %d", len(rows), len(pc.found))
	}
	for i, row := range rows {
		name := getCellValue(table, row, "name")
		if pc.found[i].Name() != name {
			return fmt.Errorf("system %d: expected %q, got %q", i, name, pc.found[i].Name())
		}
	}
	return nil
}

func (pc *powerplayContext) theResultShouldBeEmpty() error {
	if pc.err != nil {
		return fmt.Errorf("expected success, got: %w", pc.err)
	}
	if len(pc.found) != 0 {
		return fmt.Errorf("expected no systems, got %d", len(pc.found))
	}
	return nil
}

func (pc *powerplayContext) theBubbleRadiusSentShouldBe(radius float64) error {
	if pc.api.LastRadius() != radius {
		return fmt.Errorf("expected radius %g, got %g", radius, pc.api.LastRadius())
	}
	return nil
}

func (pc *powerplayContext) noRequestShouldHaveBeenMadeFor(method string) error {
	if calls := pc.api.Calls(method); calls != 0 {
		return fmt.Errorf("expected no %s calls, got %d", method, calls)
	}
	return nil
}

func (pc *powerplayContext) theLocalCmdrShouldRemainUnregistered() error {
	if pc.err != nil {
		return fmt.Errorf("expected success, got: %w", pc.err)
	}
	if pc.local.Registered() {
		return fmt.Errorf("expected the local cmdr to stay unregistered")
	}
	if _, ok := pc.local.SystemID(); ok {
		return fmt.Errorf("expected the local cmdr to keep no system")
	}
	return nil
}

func (pc *powerplayContext) theConfirmedCmdrShouldBeInSystemPledgedToPower(systemID, powerID int) error {
	confirmed := pc.registration.Confirmed
	if !confirmed.Registered() {
		return fmt.Errorf("expected the confirmed cmdr to be registered")
	}
	if got, ok := confirmed.SystemID(); !ok || got != systemID {
		return fmt.Errorf("expected confirmed system %d, got %d (set: %t)", systemID, got, ok)
	}
	if got, ok := confirmed.PowerID(); !ok || got != powerID {
		return fmt.Errorf("expected confirmed power %d, got %d (set: %t)", powerID, got, ok)
	}
	return nil
}

// InitializePowerplayScenario registers the Traikoa domain and repository steps
func InitializePowerplayScenario(ctx *godog.ScenarioContext) {
	pc := &powerplayContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^the Traikoa API knows these systems:$`, pc.theAPIKnowsTheseSystems)
	ctx.Step(`^the Traikoa API knows control system (\d+) of power (\d+) hosted by system (\d+)$`, pc.theAPIKnowsControlSystemOfPowerHostedBySystem)
	ctx.Step(`^the server confirms system (\d+) and power (\d+)$`, pc.theServerConfirmsSystemAndPower)

	// When
	ctx.Step(`^I load control system (\d+)$`, pc.iLoadControlSystem)
	ctx.Step(`^I load control system (\d+) with system (\d+)$`, pc.iLoadControlSystemWithSystem)
	ctx.Step(`^I search control systems by ids "([^"]*)"$`, pc.iSearchControlSystemsByIDs)
	ctx.Step(`^I search systems by name "([^"]*)"$`, pc.iSearchSystemsByName)
	ctx.Step(`^I search systems by ids "([^"]*)"$`, pc.iSearchSystemsByIDs)
	ctx.Step(`^I search systems without a criterion$`, pc.iSearchSystemsWithoutCriterion)
	ctx.Step(`^I request the bubble around system (\d+)$`, pc.iRequestTheBubbleAroundSystem)
	ctx.Step(`^I request the bubble around system (\d+) with radius (-?\d+(?:\.\d+)?)$`, pc.iRequestTheBubbleAroundSystemWithRadius)
	ctx.Step(`^I register cmdr (\d+) named "([^"]*)" without system or power$`, pc.iRegisterCmdrNamedWithoutSystemOrPower)

	// Then
	ctx.Step(`^the control system should be named "([^"]*)"$`, pc.theControlSystemShouldBeNamed)
	ctx.Step(`^the control system should be hosted by system (\d+)$`, pc.theControlSystemShouldBeHostedBySystem)
	ctx.Step(`^the control system should be (\d+(?:\.\d+)?) ly from system (\d+)$`, pc.theControlSystemShouldBeLightYearsFromSystem)
	ctx.Step(`^the operation should fail with an integrity error expecting system (\d+) but got (\d+)$`, pc.theOperationShouldFailWithAnIntegrityErrorExpectingSystemButGot)
	ctx.Step(`^the operation should fail with not found$`, pc.theOperationShouldFailWithNotFound)
	ctx.Step(`^the operation should fail with a validation error on "([^"]*)"$`, pc.theOperationShouldFailWithAValidationErrorOn)
	ctx.Step(`^the result should contain these systems in order:$`, pc.theResultShouldContainTheseSystemsInOrder)
	ctx.Step(`^the result should be empty$`, pc.theResultShouldBeEmpty)
	ctx.Step(`^the bubble radius sent should be (\d+(?:\.\d+)?)$`, pc.theBubbleRadiusSentShouldBe)
	ctx.Step(`^no "([^"]*)" request should have been made$`, pc.noRequestShouldHaveBeenMadeFor)
	ctx.Step(`^the local cmdr should remain unregistered$`, pc.theLocalCmdrShouldRemainUnregistered)
	ctx.Step(`^the confirmed cmdr should be in system (\d+) pledged to power (\d+)$`, pc.theConfirmedCmdrShouldBeInSystemPledgedToPower)
}
