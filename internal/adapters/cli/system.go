package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	powerplayQueries "github.com/andrescamacho/traikoa-go/internal/application/powerplay/queries"
	"github.com/andrescamacho/traikoa-go/internal/domain/system"
)

// NewSystemCommand creates the system command with subcommands
func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Look up star systems",
		Long: `Look up star systems by id or name, list the systems around one,
and measure the distance between two.

Examples:
  traikoa system get 1 17072
  traikoa system search --name "LHS 3447"
  traikoa system search --ids 1,2,3
  traikoa system bubble 17072 --radius 20
  traikoa system distance 1 17072`,
	}

	cmd.AddCommand(newSystemGetCommand())
	cmd.AddCommand(newSystemSearchCommand())
	cmd.AddCommand(newSystemBubbleCommand())
	cmd.AddCommand(newSystemDistanceCommand())

	return cmd
}

// newSystemGetCommand creates the system get subcommand
func newSystemGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>...",
		Short: "Get systems by id",
		Long: `Load one or more systems. Each id is fetched concurrently with its own deadline;
the first failure aborts the command.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			systems, err := loadSystems(cmd.Context(), a, ids)
			if err != nil {
				return err
			}

			return printSystems(cmd.OutOrStdout(), systems)
		},
	}
}

// newSystemSearchCommand creates the system search subcommand
func newSystemSearchCommand() *cobra.Command {
	var (
		name string
		ids  []int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search systems by name or ids",
		Long: `Search systems by name or by a list of ids. Exactly one criterion is required.
Ids the server does not know are omitted from the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}

			by := system.ByName(name)
			if cmd.Flags().Changed("ids") {
				by = system.ByIDs(ids...)
			}

			ctx, cancel := a.callContext(cmd.Context())
			defer cancel()

			systems, err := a.systems.Search(ctx, by)
			if err != nil {
				return err
			}
			if len(systems) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No systems found")
				return nil
			}

			return printSystems(cmd.OutOrStdout(), systems)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "System name")
	cmd.Flags().IntSliceVar(&ids, "ids", nil, "Comma-separated system ids")
	cmd.MarkFlagsMutuallyExclusive("name", "ids")
	cmd.MarkFlagsOneRequired("name", "ids")

	return cmd
}

// newSystemBubbleCommand creates the system bubble subcommand
func newSystemBubbleCommand() *cobra.Command {
	var radius float64

	cmd := &cobra.Command{
		Use:   "bubble [id]",
		Short: "List systems around a system",
		Long: fmt.Sprintf(`List the systems within a radius of a system, nearest first.
The radius defaults to %g ly. Without an id the home system from
'traikoa config set-home' is used.`, system.DefaultBubbleRadius),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}

			explicit := 0
			if len(args) == 1 {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				explicit = ids[0]
			}
			systemID, err := resolveSystemID(explicit)
			if err != nil {
				return err
			}

			m, err := a.newMediator(nil)
			if err != nil {
				return err
			}

			ctx, cancel := a.callContext(cmd.Context())
			defer cancel()

			resp, err := m.Send(ctx, &powerplayQueries.BubbleQuery{SystemID: systemID, Radius: radius})
			if err != nil {
				return err
			}
			bubble := resp.(*powerplayQueries.BubbleResponse)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Systems within %g ly of %s (%d):\n\n", bubble.Radius, bubble.Center.Name(), len(bubble.Neighbours))
			if len(bubble.Neighbours) == 0 {
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDISTANCE\tALLEGIANCE\tCONTESTED")
			fmt.Fprintln(w, "--\t----\t--------\t----------\t---------")
			for _, n := range bubble.Neighbours {
				fmt.Fprintf(w, "%d\t%s\t%.2f ly\t%s\t%t\n",
					n.System.ID(), n.System.Name(), n.Distance, n.System.Allegiance(), n.System.Contested())
			}
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&radius, "radius", 0, "Radius in light years (default 15)")

	return cmd
}

// newSystemDistanceCommand creates the system distance subcommand
func newSystemDistanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <id> <id>",
		Short: "Distance between two systems",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := currentApp()
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			systems, err := loadSystems(cmd.Context(), a, ids)
			if err != nil {
				return err
			}

			from, to := systems[0], systems[1]
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s: %.2f ly\n", from.Name(), to.Name(), from.DistanceTo(to))
			return nil
		},
	}
}

// loadSystems loads every id on its own goroutine, keeping the argument order
func loadSystems(ctx context.Context, a *app, ids []int) ([]*system.System, error) {
	systems := make([]*system.System, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			callCtx, cancel := a.callContext(ctx)
			defer cancel()

			s, err := a.systems.Load(callCtx, id)
			if err != nil {
				return err
			}
			systems[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return systems, nil
}

func printSystems(out io.Writer, systems []*system.System) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tX\tY\tZ\tPOPULATION\tALLEGIANCE\tSECURITY\tPERMIT\tCONTROL")
	fmt.Fprintln(w, "--\t----\t-\t-\t-\t----------\t----------\t--------\t------\t-------")
	for _, s := range systems {
		controlID, ok := s.ControlSystemID()
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%.2f\t%s\t%s\t%s\t%t\t%s\n",
			s.ID(), s.Name(), s.X(), s.Y(), s.Z(),
			strconv.FormatInt(s.Population(), 10), s.Allegiance(), s.Security(), s.NeedsPermit(),
			optionalInt(controlID, ok))
	}
	return w.Flush()
}
