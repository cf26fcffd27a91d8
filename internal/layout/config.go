package layout

import (
	"time"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/theme"
)

// RenderConfig combines everything one layout pass needs besides the
// events themselves: theme, view state, and the active filters. The theme
// is passed through to card sizing untouched; the engine's algorithms are
// otherwise independent of it.
type RenderConfig struct {
	Theme theme.Theme
	View  ViewState

	// RangeStart and RangeEnd bound the visible date range. Zero values
	// leave the corresponding side unbounded. The range is inclusive.
	RangeStart time.Time
	RangeEnd   time.Time

	// Tags filters events to those carrying at least one listed tag.
	// Empty means no tag filtering.
	Tags []string
}

// NewRenderConfig returns a config with the default theme and view state.
func NewRenderConfig() RenderConfig {
	return RenderConfig{
		Theme: theme.Default(),
		View:  NewViewState(Vertical, Maximal, 0.5),
	}
}

// FilterEvents applies the config's date range and tag filters. The input
// is not modified; order is preserved.
func (c RenderConfig) FilterEvents(events []event.TimelineEvent) []event.TimelineEvent {
	out := make([]event.TimelineEvent, 0, len(events))
	for _, e := range events {
		if !c.RangeStart.IsZero() && e.Timestamp.Before(c.RangeStart) {
			continue
		}
		if !c.RangeEnd.IsZero() && e.Timestamp.After(c.RangeEnd) {
			continue
		}
		if len(c.Tags) > 0 && !hasAnyTag(e, c.Tags) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func hasAnyTag(e event.TimelineEvent, tags []string) bool {
	for _, t := range tags {
		if e.HasTag(t) {
			return true
		}
	}
	return false
}
