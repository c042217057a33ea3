package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	powerplayQueries "github.com/andrescamacho/traikoa-go/internal/application/powerplay/queries"
	"github.com/andrescamacho/traikoa-go/internal/domain/controlsystem"
)

// NewControlSystemCommand creates the control-system command with subcommands
func NewControlSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "control-system",
		Aliases: []string{"cs"},
		Short:   "Look up Powerplay control systems",
		Long: `Look up control systems together with the star system hosting them,
and find the control system of a power nearest to a system.

Examples:
  traikoa control-system get 10 11
  traikoa control-system search --ids 10,11,12
  traikoa control-system nearest --system 1 --power 5`,
	}

	cmd.AddCommand(newControlSystemGetCommand())
	cmd.AddCommand(newControlSystemSearchCommand())
	cmd.AddCommand(newControlSystemNearestCommand())

	return cmd
}

// newControlSystemGetCommand creates the control-system get subcommand
func newControlSystemGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Get control systems by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			controlSystems := make([]*controlsystem.ControlSystem, len(ids))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, id := range ids {
				g.Go(func() error {
					callCtx, cancel := a.callContext(ctx)
					defer cancel()

					cs, err := a.controlSystems.Load(callCtx, id)
					if err != nil {
						return err
					}
					controlSystems[i] = cs
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			return printControlSystems(cmd.OutOrStdout(), controlSystems)
		},
	}
}

// newControlSystemSearchCommand creates the control-system search subcommand
func newControlSystemSearchCommand() *cobra.Command {
	var ids []int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search control systems by ids",
		Long: `Search control systems by ids. Unknown ids are omitted; a hosting system
that cannot be loaded fails the whole search.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}

			ctx, cancel := a.callContext(cmd.Context())
			defer cancel()

			controlSystems, err := a.controlSystems.Search(ctx, ids)
			if err != nil {
				return err
			}
			if len(controlSystems) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No control systems found")
				return nil
			}

			return printControlSystems(cmd.OutOrStdout(), controlSystems)
		},
	}

	cmd.Flags().IntSliceVar(&ids, "ids", nil, "Comma-separated control system ids (required)")
	cmd.MarkFlagRequired("ids")

	return cmd
}

// newControlSystemNearestCommand creates the control-system nearest subcommand
func newControlSystemNearestCommand() *cobra.Command {
	var (
		systemID int
		powerID  int
	)

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the nearest control system of a power",
		Long: `Find the control system of a power closest to a system.
Without --system the home system from 'traikoa config set-home' is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}
			from, err := resolveSystemID(systemID)
			if err != nil {
				return err
			}

			m, err := a.newMediator(nil)
			if err != nil {
				return err
			}

			ctx, cancel := a.callContext(cmd.Context())
			defer cancel()

			resp, err := m.Send(ctx, &powerplayQueries.NearestControlSystemQuery{SystemID: from, PowerID: powerID})
			if err != nil {
				return err
			}
			nearest := resp.(*powerplayQueries.NearestControlSystemResponse)

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Nearest %s control system to %s: %s (%d) at %.2f ly\n",
				nearest.Power.Name(), nearest.From.Name(), nearest.ControlSystem.Name(),
				nearest.ControlSystem.ID(), nearest.Distance)
			return nil
		},
	}

	cmd.Flags().IntVar(&systemID, "system", 0, "Reference system id")
	cmd.Flags().IntVar(&powerID, "power", 0, "Power id (required)")
	cmd.MarkFlagRequired("power")

	return cmd
}

func printControlSystems(out io.Writer, controlSystems []*controlsystem.ControlSystem) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSYSTEM\tPOWER\tX\tY\tZ\tEXPLOITATIONS")
	fmt.Fprintln(w, "--\t----\t------\t-----\t-\t-\t-\t-------------")
	for _, cs := range controlSystems {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.2f\t%.2f\t%.2f\t%d\n",
			cs.ID(), cs.Name(), cs.SystemID(), cs.PowerID(), cs.X(), cs.Y(), cs.Z(), len(cs.Exploitations()))
	}
	return w.Flush()
}
