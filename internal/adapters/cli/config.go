package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/traikoa-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage Traikoa configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (TRAIKOA_* prefix)
2. Config file (config.yaml)
3. Default values

User preferences (default cmdr, home system) are stored in ~/.traikoa/config.json

Examples:
  traikoa config show
  traikoa config set-cmdr --discord-id 1234
  traikoa config set-home --system 17072
  traikoa config clear`,
		Annotations: map[string]string{noRuntime: "true"},
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCmdrCommand())
	cmd.AddCommand(newConfigSetHomeCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Fprintln(out, "Traikoa Configuration")
			fmt.Fprintln(out, "=====================")

			fmt.Fprintln(out, "User Preferences:")
			fmt.Fprintf(out, "  Config file:      %s\n", userConfigHandler.GetConfigPath())
			if userCfg.DefaultDiscordID != nil {
				fmt.Fprintf(out, "  Default Cmdr:     %d\n", *userCfg.DefaultDiscordID)
			} else {
				fmt.Fprintln(out, "  Default Cmdr:     (not set)")
			}
			if userCfg.HomeSystemID != nil {
				fmt.Fprintf(out, "  Home System:      %d\n", *userCfg.HomeSystemID)
			} else {
				fmt.Fprintln(out, "  Home System:      (not set)")
			}

			fmt.Fprintln(out, "\nTraikoa API:")
			fmt.Fprintf(out, "  Base URL:         %s\n", cfg.API.BaseURL)
			fmt.Fprintf(out, "  Version:          %s\n", cfg.API.Version)
			fmt.Fprintf(out, "  Timeout:          %s\n", cfg.API.Timeout)
			if cfg.API.RateLimit.Requests > 0 {
				fmt.Fprintf(out, "  Rate Limit:       %d req/s (burst: %d)\n",
					cfg.API.RateLimit.Requests, cfg.API.RateLimit.Burst)
			} else {
				fmt.Fprintln(out, "  Rate Limit:       (disabled)")
			}

			fmt.Fprintln(out, "\nLedger Database:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}

			fmt.Fprintln(out, "\nObservability:")
			fmt.Fprintf(out, "  Log Level:        %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Log Format:       %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Metrics:          %t (namespace: %s)\n", cfg.Metrics.Enabled, cfg.Metrics.Namespace)
			fmt.Fprintf(out, "  Tracing:          %t (exporter: %s)\n", cfg.Tracing.Enabled, cfg.Tracing.Exporter)

			return nil
		},
	}
}

// newConfigSetCmdrCommand creates the config set-cmdr subcommand
func newConfigSetCmdrCommand() *cobra.Command {
	var discordID int64

	cmd := &cobra.Command{
		Use:   "set-cmdr",
		Short: "Set the default cmdr",
		Long:  "Set the discord id used by cmdr commands when none is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if discordID <= 0 {
				return fmt.Errorf("--discord-id must be a positive integer")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetDefaultDiscordID(discordID); err != nil {
				return fmt.Errorf("failed to set default cmdr: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default cmdr set to %d\n", discordID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&discordID, "discord-id", 0, "Discord id (required)")
	cmd.MarkFlagRequired("discord-id")

	return cmd
}

// newConfigSetHomeCommand creates the config set-home subcommand
func newConfigSetHomeCommand() *cobra.Command {
	var systemID int

	cmd := &cobra.Command{
		Use:   "set-home",
		Short: "Set the home system",
		Long:  "Set the reference system used by bubble and nearest commands when none is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if systemID <= 0 {
				return fmt.Errorf("--system must be a positive integer")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetHomeSystem(systemID); err != nil {
				return fmt.Errorf("failed to set home system: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Home system set to %d\n", systemID)
			return nil
		},
	}

	cmd.Flags().IntVar(&systemID, "system", 0, "System id (required)")
	cmd.MarkFlagRequired("system")

	return cmd
}

// newConfigClearCommand creates the config clear subcommand
func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear user preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.Clear(); err != nil {
				return fmt.Errorf("failed to clear user config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ User preferences cleared")
			return nil
		},
	}
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "(unparseable url)"
	}
	return u.Redacted()
}
