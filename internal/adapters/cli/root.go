package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath     string
	verbose        bool
	requestTimeout time.Duration
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "traikoa",
		Short: "Traikoa CLI - Query the Traikoa Powerplay API",
		Long: `Traikoa CLI reads systems, powers, control systems and cmdrs from the
Traikoa Powerplay API and registers cmdrs with it.

Examples:
  traikoa system get 1 2 3
  traikoa system search --name "LHS 3447"
  traikoa system bubble 17072 --radius 20
  traikoa system distance 1 17072
  traikoa power list
  traikoa control-system nearest --system 1 --power 5
  traikoa cmdr register --discord-id 1234 --name jameson --power 5
  traikoa cmdr history 1234`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsRuntime(cmd) {
				return nil
			}
			a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			current = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if current == nil {
				return nil
			}
			err := current.Close(cmd.Context(), cmd.ErrOrStderr())
			current = nil
			return err
		},
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml, ./configs/config.yaml, /etc/traikoa/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging and print collected metrics")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 30*time.Second,
		"Deadline for each API call")

	// Add command groups
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewSystemCommand())
	rootCmd.AddCommand(NewPowerCommand())
	rootCmd.AddCommand(NewControlSystemCommand())
	rootCmd.AddCommand(NewCmdrCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
