package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/riverline/riverline/internal/zoom"
)

// ZoomInfo is the zoom command's result payload.
type ZoomInfo struct {
	Level        float64 `json:"level"`
	Tier         string  `json:"tier"`
	PixelsPerDay float64 `json:"pixels_per_day"`
}

// NewZoomCommand creates the zoom command.
func NewZoomCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zoom <level>",
		Short: "Show the tier and time scale for a zoom level",
		Long: `Map a continuous zoom level in [0,1] to its discrete tier and
pixels-per-day scale. Out-of-range levels are clamped.

Examples:
  riverline zoom 0.3
  riverline zoom 0.85 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZoom(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runZoom(opts *RootOptions, arg string, cmd *cobra.Command) error {
	level, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid zoom level %q", arg), err)
	}
	level = zoom.Clamp(level)

	info := ZoomInfo{
		Level:        level,
		Tier:         zoom.TierFor(level).String(),
		PixelsPerDay: zoom.PixelsPerDay(level),
	}

	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	text := fmt.Sprintf("level=%.2f tier=%s scale=%.2fpx/day", info.Level, info.Tier, info.PixelsPerDay)
	return f.SuccessText(text, info)
}
