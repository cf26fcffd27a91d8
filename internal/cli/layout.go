package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/geom"
	"github.com/riverline/riverline/internal/harness"
	"github.com/riverline/riverline/internal/layout"
	"github.com/riverline/riverline/internal/render"
	"github.com/riverline/riverline/internal/theme"
)

// LayoutOptions holds flags for the layout command.
type LayoutOptions struct {
	*RootOptions
	DB          bool
	Zoom        float64
	Orientation string
	Mode        string
	ThemeFile   string
	Tags        string
	Selected    string
	Expanded    []string
	From        string
	To          string
}

// LayoutNodeOut is the JSON shape of one placed node.
type LayoutNodeOut struct {
	ID           string     `json:"id"`
	Kind         string     `json:"kind"`
	Label        string     `json:"label"`
	Count        int        `json:"count"`
	PrimaryPx    float64    `json:"primary_px"`
	Marker       geom.Point `json:"marker"`
	Card         *geom.Rect `json:"card,omitempty"`
	LabelVisible bool       `json:"label_visible"`
	Selected     bool       `json:"selected,omitempty"`
}

// LayoutOutput is the layout command's result payload.
type LayoutOutput struct {
	Tier         string          `json:"tier"`
	PixelsPerDay float64         `json:"pixels_per_day"`
	EventCount   int             `json:"event_count"`
	Nodes        []LayoutNodeOut `json:"nodes"`
}

// NewLayoutCommand creates the layout command.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LayoutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "layout <events-file>",
		Short: "Compute the chronological timeline layout",
		Long: `Compute marker and card geometry for a set of events.

Events come from a YAML fixture, or a SQLite event database with --db.
The zoom level selects the clustering tier and time scale; maximal mode
adds packed card rectangles.

Exit codes:
  0 - Layout computed
  2 - Command error (unreadable input, invalid flags)

Examples:
  riverline layout events.yaml --zoom 0.3
  riverline layout events.db --db --zoom 0.9 --mode maximal
  riverline layout events.yaml --tags travel,family --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(opts, args[0], cmd)
		},
	}

	addViewFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.Orientation, "orientation", "vertical", "time axis (vertical|horizontal)")
	cmd.Flags().StringVar(&opts.Mode, "mode", "minimal", "display mode (minimal|maximal)")
	cmd.Flags().StringVar(&opts.Selected, "selected", "", "selected event ID")
	cmd.Flags().StringSliceVar(&opts.Expanded, "expanded", nil, "expanded cluster IDs")

	return cmd
}

// addViewFlags registers the flags shared between layout and river.
func addViewFlags(cmd *cobra.Command, opts *LayoutOptions) {
	cmd.Flags().BoolVar(&opts.DB, "db", false, "read events from a SQLite database")
	cmd.Flags().Float64Var(&opts.Zoom, "zoom", 0.5, "zoom level in [0,1]")
	cmd.Flags().StringVar(&opts.ThemeFile, "theme", "", "theme YAML file (defaults to built-in theme)")
	cmd.Flags().StringVar(&opts.Tags, "tags", "", "comma-separated tag filter")
	cmd.Flags().StringVar(&opts.From, "from", "", "range start (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&opts.To, "to", "", "range end (YYYY-MM-DD or RFC 3339)")
}

// buildConfig loads events and assembles the render config shared by the
// layout and river commands. All failures here are command errors.
func buildConfig(opts *LayoutOptions, path string) (layout.RenderConfig, []event.TimelineEvent, error) {
	events, err := loadEvents(path, opts.DB)
	if err != nil {
		return layout.RenderConfig{}, nil, WrapExitError(ExitCommandError, "failed to load events", err)
	}

	th := theme.Default()
	if opts.ThemeFile != "" {
		th, err = theme.Load(opts.ThemeFile)
		if err != nil {
			return layout.RenderConfig{}, nil, WrapExitError(ExitCommandError, "failed to load theme", err)
		}
	}

	view, err := harness.ViewSpec{
		Orientation: opts.Orientation,
		Mode:        opts.Mode,
		ZoomLevel:   opts.Zoom,
		Expanded:    opts.Expanded,
		Selected:    opts.Selected,
	}.ViewState()
	if err != nil {
		return layout.RenderConfig{}, nil, WrapExitError(ExitCommandError, "invalid view flags", err)
	}

	from, err := parseDate(opts.From)
	if err != nil {
		return layout.RenderConfig{}, nil, WrapExitError(ExitCommandError, "invalid --from", err)
	}
	to, err := parseDate(opts.To)
	if err != nil {
		return layout.RenderConfig{}, nil, WrapExitError(ExitCommandError, "invalid --to", err)
	}

	cfg := layout.RenderConfig{
		Theme:      th,
		View:       view,
		RangeStart: from,
		RangeEnd:   to,
		Tags:       splitTags(opts.Tags),
	}
	return cfg, events, nil
}

func runLayout(opts *LayoutOptions, path string, cmd *cobra.Command) error {
	cfg, events, err := buildConfig(opts, path)
	if err != nil {
		return err
	}

	filtered := cfg.FilterEvents(events)
	nodes := layout.Compute(events, cfg)

	out := LayoutOutput{
		Tier:         cfg.View.Tier().String(),
		PixelsPerDay: cfg.View.PixelsPerDay(),
		EventCount:   len(filtered),
		Nodes:        make([]LayoutNodeOut, 0, len(nodes)),
	}
	for _, ln := range nodes {
		out.Nodes = append(out.Nodes, layoutNodeOut(ln))
	}

	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	f.VerboseLog("loaded %d events, %d after filtering", len(events), len(filtered))
	return f.SuccessText(layoutText(out), out)
}

func layoutNodeOut(ln layout.LayoutNode) LayoutNodeOut {
	kind := "event"
	if ln.Node.Kind() == render.KindCluster {
		kind = "cluster"
	}
	return LayoutNodeOut{
		ID:           ln.Node.NodeID(),
		Kind:         kind,
		Label:        ln.Node.Label(),
		Count:        ln.Node.Count(),
		PrimaryPx:    ln.PrimaryPx,
		Marker:       ln.Marker,
		Card:         ln.Card,
		LabelVisible: ln.LabelVisible,
		Selected:     ln.Selected,
	}
}

func layoutText(out LayoutOutput) string {
	s := fmt.Sprintf("tier=%s scale=%.2fpx/day events=%d nodes=%d",
		out.Tier, out.PixelsPerDay, out.EventCount, len(out.Nodes))
	for _, n := range out.Nodes {
		label := ""
		if n.LabelVisible {
			label = " +label"
		}
		sel := ""
		if n.Selected {
			sel = " *selected"
		}
		s += fmt.Sprintf("\n  %-7s %-40s count=%-3d px=%.1f%s%s", n.Kind, n.ID, n.Count, n.PrimaryPx, label, sel)
	}
	return s
}
