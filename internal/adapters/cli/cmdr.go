package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	cmdrCommands "github.com/andrescamacho/traikoa-go/internal/application/cmdr/commands"
	cmdrQueries "github.com/andrescamacho/traikoa-go/internal/application/cmdr/queries"
	"github.com/andrescamacho/traikoa-go/internal/domain/cmdr"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/logging"
)

// NewCmdrCommand creates the cmdr command with subcommands
func NewCmdrCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmdr",
		Short: "Look up and register cmdrs",
		Long: `Look up cmdrs by discord id and register them with the Traikoa API.
Registration attempts are kept in the local ledger database.

Examples:
  traikoa cmdr get 1234
  traikoa cmdr register --discord-id 1234 --name jameson --system 1 --power 5
  traikoa cmdr history 1234`,
	}

	cmd.AddCommand(newCmdrGetCommand())
	cmd.AddCommand(newCmdrRegisterCommand())
	cmd.AddCommand(newCmdrHistoryCommand())

	return cmd
}

// newCmdrGetCommand creates the cmdr get subcommand
func newCmdrGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [discord-id]",
		Short: "Get a cmdr by discord id",
		Long:  "Get a cmdr by discord id. Without an id the default from 'traikoa config set-cmdr' is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}
			discordID, err := discordIDFromArgs(args)
			if err != nil {
				return err
			}

			ctx, cancel := a.callContext(cmd.Context())
			defer cancel()

			c, err := a.cmdrs.Load(ctx, discordID)
			if err != nil {
				return err
			}

			systemID, hasSystem := c.SystemID()
			powerID, hasPower := c.PowerID()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cmdr:        %s\n", c.DiscordName())
			fmt.Fprintf(out, "Discord ID:  %d\n", c.DiscordID())
			fmt.Fprintf(out, "System:      %s\n", optionalInt(systemID, hasSystem))
			fmt.Fprintf(out, "Power:       %s\n", optionalInt(powerID, hasPower))
			return nil
		},
	}
}

// newCmdrRegisterCommand creates the cmdr register subcommand
func newCmdrRegisterCommand() *cobra.Command {
	var (
		discordID int64
		name      string
		systemID  int
		powerID   int
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a cmdr with the Traikoa API",
		Long: `Send a cmdr registration and print the state the server confirmed.
The attempt is recorded in the ledger database when it is reachable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}
			id, err := resolveDiscordID(discordID)
			if err != nil {
				return err
			}

			command := &cmdrCommands.RegisterCmdrCommand{
				DiscordID:   id,
				DiscordName: name,
			}
			if cmd.Flags().Changed("system") {
				command.SystemID = &systemID
			}
			if cmd.Flags().Changed("power") {
				command.PowerID = &powerID
			}

			ledger, err := a.openLedger()
			if err != nil {
				a.log.Warn(cmd.Context(), "registration ledger unavailable; attempt will not be recorded", logging.Err(err))
			}

			m, err := a.newMediator(ledger)
			if err != nil {
				return err
			}

			ctx, cancel := a.callContext(cmd.Context())
			defer cancel()

			resp, err := m.Send(logging.ContextWithLogger(ctx, a.log), command)
			registered, _ := resp.(*cmdrCommands.RegisterCmdrResponse)
			if err != nil {
				if registered == nil || registered.Registration == nil {
					return err
				}
				// Confirmed by the server; only the ledger write failed
				a.log.Warn(cmd.Context(), "registration confirmed but not recorded", logging.Err(err))
			}
			confirmed := registered.Registration.Confirmed

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Registered cmdr %s (%d)\n", confirmed.DiscordName(), confirmed.DiscordID())
			switch {
			case registered.RecordID > 0:
				fmt.Fprintf(out, "  Ledger record: %d\n", registered.RecordID)
			case err != nil:
				fmt.Fprintf(out, "  Ledger record: not written (%v)\n", err)
			}
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "\tSUBMITTED\tCONFIRMED")
			fmt.Fprintln(w, "\t---------\t---------")
			writeCmdrRow(w, "Name", registered.Registration.Submitted.DiscordName(), confirmed.DiscordName())
			writeCmdrRow(w, "System", cmdrSystem(registered.Registration.Submitted), cmdrSystem(confirmed))
			writeCmdrRow(w, "Power", cmdrPower(registered.Registration.Submitted), cmdrPower(confirmed))
			return w.Flush()
		},
	}

	cmd.Flags().Int64Var(&discordID, "discord-id", 0, "Discord id (default: 'traikoa config set-cmdr')")
	cmd.Flags().StringVar(&name, "name", "", "Discord name (required)")
	cmd.Flags().IntVar(&systemID, "system", 0, "System the cmdr is in")
	cmd.Flags().IntVar(&powerID, "power", 0, "Power the cmdr is pledged to")
	cmd.MarkFlagRequired("name")

	return cmd
}

// newCmdrHistoryCommand creates the cmdr history subcommand
func newCmdrHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history [discord-id]",
		Short: "List recorded registration attempts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}
			discordID, err := discordIDFromArgs(args)
			if err != nil {
				return err
			}

			ledger, err := a.openLedger()
			if err != nil {
				return err
			}
			m, err := a.newMediator(ledger)
			if err != nil {
				return err
			}

			resp, err := m.Send(cmd.Context(), &cmdrQueries.GetRegistrationHistoryQuery{DiscordID: discordID})
			if err != nil {
				return err
			}
			records := resp.(*cmdrQueries.GetRegistrationHistoryResponse).Records

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintf(out, "No registrations recorded for %d\n", discordID)
				return nil
			}

			fmt.Fprintf(out, "Registration attempts for %d (%d):\n\n", discordID, len(records))
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tRECORDED\tSTATUS\tNAME\tSYSTEM\tPOWER\tERROR")
			fmt.Fprintln(w, "--\t--------\t------\t----\t------\t-----\t-----")
			for _, r := range records {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.RecordedAt.Format("2006-01-02 15:04:05"), r.Status, r.DiscordName,
					optionalPtr(r.SystemID), optionalPtr(r.PowerID), r.Error)
			}
			return w.Flush()
		},
	}
}

func discordIDFromArgs(args []string) (int64, error) {
	if len(args) == 0 {
		return resolveDiscordID(0)
	}
	return parseDiscordID(args[0])
}

func writeCmdrRow(w *tabwriter.Writer, label, submitted, confirmed string) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", label, submitted, confirmed)
}

func cmdrSystem(c *cmdr.Cmdr) string {
	return optionalInt(c.SystemID())
}

func cmdrPower(c *cmdr.Cmdr) string {
	return optionalInt(c.PowerID())
}

func optionalPtr(value *int) string {
	if value == nil {
		return "-"
	}
	return optionalInt(*value, true)
}
