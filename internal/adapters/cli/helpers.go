package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/andrescamacho/traikoa-go/internal/adapters/api"
	"github.com/andrescamacho/traikoa-go/internal/adapters/metrics"
	"github.com/andrescamacho/traikoa-go/internal/adapters/persistence"
	"github.com/andrescamacho/traikoa-go/internal/application/mediator"
	"github.com/andrescamacho/traikoa-go/internal/application/setup"
	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/domain/shared"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/config"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/database"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/logging"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/tracing"
)

// noRuntime marks commands that run without an API client
const noRuntime = "no-runtime"

// current is the runtime of the command being executed
var current *app

// app holds the dependencies shared by the API-backed commands
type app struct {
	cfg        *config.Config
	log        logging.Logger
	client     *api.TraikoaClient
	collectors *metrics.Collectors

	systems        *api.SystemRepository
	controlSystems *api.ControlSystemRepository
	powers         *api.PowerRepository
	cmdrs          *api.CmdrRepository

	shutdownTracing tracing.ShutdownFunc
	db              *gorm.DB
}

// newApp loads the configuration and wires logging, tracing, metrics and the API client
func newApp(ctx context.Context, stderr io.Writer) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	log := logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.IncludeCaller,
		Output:    stderr,
	})

	shutdown, err := tracing.Init(ctx, cfg.Tracing, stderr, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	opts := []api.Option{api.WithLogger(log)}

	var collectors *metrics.Collectors
	if cfg.Metrics.Enabled {
		collectors, err = metrics.NewCollectors(cfg.Metrics.Namespace)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics collectors: %w", err)
		}
		opts = append(opts, api.WithMetrics(collectors.API))
	}

	client := api.NewTraikoaClient(cfg.API, opts...)
	systems := api.NewSystemRepository(client.Systems())

	log.Debug(ctx, "traikoa client ready",
		logging.String("base_url", client.URL("")),
		logging.Duration("timeout", cfg.API.Timeout))

	return &app{
		cfg:             cfg,
		log:             log,
		client:          client,
		collectors:      collectors,
		systems:         systems,
		controlSystems:  api.NewControlSystemRepository(client.ControlSystems(), systems),
		powers:          api.NewPowerRepository(client.Powers()),
		cmdrs:           api.NewCmdrRepository(client.Cmdrs()),
		shutdownTracing: shutdown,
	}, nil
}

// openLedger connects to the registration database and migrates it
func (a *app) openLedger() (*persistence.GormCmdrRegistrationRepository, error) {
	if a.db == nil {
		db, err := database.NewConnection(&a.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		a.db = db
	}
	return persistence.NewGormCmdrRegistrationRepository(a.db), nil
}

// newMediator builds a mediator over the app's repositories. A nil ledger
// disables registration history.
func (a *app) newMediator(ledger *persistence.GormCmdrRegistrationRepository) (mediator.Mediator, error) {
	var registrations cmdr.RegistrationLedger
	if ledger != nil {
		registrations = ledger
	}

	registry := setup.NewHandlerRegistry(a.systems, a.controlSystems, a.powers, a.cmdrs, registrations, shared.NewRealClock())

	var middlewares []mediator.Middleware
	if a.collectors != nil {
		middlewares = append(middlewares, metrics.PrometheusMiddleware(a.collectors.Commands))
	}
	return registry.CreateConfiguredMediator(middlewares...)
}

// callContext derives the context of one API call from the --timeout flag
func (a *app) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, requestTimeout)
}

// Close flushes spans, closes the database and, in verbose mode, prints collected metrics
func (a *app) Close(ctx context.Context, stderr io.Writer) error {
	var errs []error

	if verbose && a.collectors != nil {
		if err := writeMetrics(stderr, a.collectors); err != nil {
			errs = append(errs, err)
		}
	}
	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shut down tracing: %w", err))
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}

// writeMetrics prints one line per counter series
func writeMetrics(w io.Writer, collectors *metrics.Collectors) error {
	families, err := collectors.Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		for _, m := range family.GetMetric() {
			labels := ""
			for _, pair := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", pair.GetName(), pair.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s%s %g\n", family.GetName(), labels, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Fprintf(w, "%s%s count=%d sum=%.3fs\n", family.GetName(), labels,
					m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum())
			}
		}
	}
	return nil
}

// skipsRuntime reports whether cmd or one of its parents runs without an API client
func skipsRuntime(cmd *cobra.Command) bool {
	if cmd.Name() == "help" {
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[noRuntime]; ok {
			return true
		}
	}
	return false
}

// currentApp returns the app built by the root command
func currentApp() (*app, error) {
	if current == nil {
		return nil, fmt.Errorf("traikoa client is not initialized")
	}
	return current, nil
}

// parseIDs converts positional arguments into positive ids
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q: must be a positive integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseDiscordID converts a positional argument into a discord id
func parseDiscordID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid discord id %q: must be a positive integer", arg)
	}
	return id, nil
}

// loadUserConfig reads ~/.traikoa/config.json
func loadUserConfig() (*config.UserConfig, error) {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to create user config handler: %w", err)
	}
	return handler.Load()
}

// resolveSystemID returns the explicit id when set, otherwise the configured home system
func resolveSystemID(explicit int) (int, error) {
	if explicit > 0 {
		return explicit, nil
	}

	userCfg, err := loadUserConfig()
	if err != nil {
		return 0, fmt.Errorf("no system specified and failed to load user config: %w", err)
	}
	if userCfg.HomeSystemID != nil {
		return *userCfg.HomeSystemID, nil
	}

	return 0, fmt.Errorf("no system specified: pass a system id or set one with 'traikoa config set-home'")
}

// resolveDiscordID returns the explicit id when set, otherwise the configured default cmdr
func resolveDiscordID(explicit int64) (int64, error) {
	if explicit > 0 {
		return explicit, nil
	}

	userCfg, err := loadUserConfig()
	if err != nil {
		return 0, fmt.Errorf("no cmdr specified and failed to load user config: %w", err)
	}
	if userCfg.DefaultDiscordID != nil {
		return *userCfg.DefaultDiscordID, nil
	}

	return 0, fmt.Errorf("no cmdr specified: pass --discord-id or set one with 'traikoa config set-cmdr'")
}

// optionalInt formats an optional id
func optionalInt(value int, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.Itoa(value)
}
