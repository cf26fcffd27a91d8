package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverline/riverline/internal/river"
)

// NewRiverCommand creates the river command.
func NewRiverCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LayoutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "river <events-file>",
		Short: "Compute river flow paths and intersections",
		Long: `Derive per-participant flow paths from a set of events.

Each participant gets a lane in first-appearance order; events shared by
two or more participants emit an intersection where the streams meet.
Events come from a YAML fixture, or a SQLite event database with --db.

Exit codes:
  0 - Flow computed
  2 - Command error (unreadable input, invalid flags)

Examples:
  riverline river events.yaml
  riverline river events.db --db --zoom 0.8 --format json
  riverline river events.yaml --tags family`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRiver(opts, args[0], cmd)
		},
	}

	addViewFlags(cmd, opts)

	return cmd
}

func runRiver(opts *LayoutOptions, path string, cmd *cobra.Command) error {
	cfg, events, err := buildConfig(opts, path)
	if err != nil {
		return err
	}

	filtered := cfg.FilterEvents(events)
	flow := river.Build(filtered, river.Options{
		Palette:      cfg.Theme.Palette,
		LaneSpacing:  cfg.Theme.LaneSpacing,
		PixelsPerDay: cfg.View.PixelsPerDay(),
	})

	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	f.VerboseLog("loaded %d events, %d after filtering", len(events), len(filtered))
	return f.SuccessText(riverText(flow), flow)
}

func riverText(flow river.Flow) string {
	s := fmt.Sprintf("paths=%d intersections=%d", len(flow.Paths), len(flow.Intersections))
	for _, p := range flow.Paths {
		s += fmt.Sprintf("\n  %-20s color=%s lane_y=%.1f events=%d",
			p.ParticipantID, p.Color.Hex(), p.Origin.Y, len(p.Nodes))
	}
	for _, in := range flow.Intersections {
		s += fmt.Sprintf("\n  junction %-12s at (%.1f, %.1f) participants=%v",
			in.EventID, in.Pos.X, in.Pos.Y, in.ParticipantIDs)
	}
	return s
}
