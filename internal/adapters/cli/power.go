package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/traikoa-go/internal/domain/power"
)

// NewPowerCommand creates the power command with subcommands
func NewPowerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Look up Powerplay powers",
		Long: `Look up Powerplay powers.

Examples:
  traikoa power list
  traikoa power get 5`,
	}

	cmd.AddCommand(newPowerGetCommand())
	cmd.AddCommand(newPowerListCommand())

	return cmd
}

// newPowerGetCommand creates the power get subcommand
func newPowerGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a power by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			ctx, cancel := a.callContext(cmd.Context())
			defer cancel()

			p, err := a.powers.Load(ctx, ids[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Power:            %s (%d)\n", p.Name(), p.ID())
			fmt.Fprintf(out, "Superfaction:     %s\n", p.Superfaction())
			fmt.Fprintf(out, "Income:           %d\n", p.Income())
			fmt.Fprintf(out, "Overhead:         %g\n", p.Overhead())
			fmt.Fprintf(out, "Default upkeep:   %d\n", p.DefaultUpkeep())
			fmt.Fprintf(out, "Predicted:        %d\n", p.Predicted())
			fmt.Fprintf(out, "Control systems:  %v\n", p.ControlSystemIDs())
			return nil
		},
	}
}

// newPowerListCommand creates the power list subcommand
func newPowerListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all powers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}

			ctx, cancel := a.callContext(cmd.Context())
			defer cancel()

			powers, err := a.powers.List(ctx)
			if err != nil {
				return err
			}
			if len(powers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No powers found")
				return nil
			}

			return printPowers(cmd.OutOrStdout(), powers)
		},
	}
}

func printPowers(out io.Writer, powers []*power.Power) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSUPERFACTION\tCONTROL SYSTEMS\tINCOME\tOVERHEAD\tPREDICTED")
	fmt.Fprintln(w, "--\t----\t------------\t---------------\t------\t--------\t---------")
	for _, p := range powers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%g\t%d\n",
			p.ID(), p.Name(), p.Superfaction(), len(p.ControlSystemIDs()), p.Income(), p.Overhead(), p.Predicted())
	}
	return w.Flush()
}
