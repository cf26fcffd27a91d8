package layout

import (
	"fmt"
	"sort"
	"time"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/zoom"
)

// Orientation selects the primary (time) axis direction.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// DisplayMode selects marker-only or full-card rendering.
type DisplayMode int

const (
	Minimal DisplayMode = iota
	Maximal
)

func (m DisplayMode) String() string {
	if m == Maximal {
		return "maximal"
	}
	return "minimal"
}

// ViewState is the immutable view/zoom state for one layout pass.
//
// Zoom tier and pixels-per-day are pure functions of ZoomLevel and are
// derived on demand, never stored, so they cannot go stale independently.
// Updates go through the With* helpers, which return a new state.
type ViewState struct {
	orientation     Orientation
	mode            DisplayMode
	zoomLevel       float64
	viewportOffset  float64
	focusedDate     time.Time
	selectedEventID string
	expanded        map[string]bool
}

// NewViewState creates a view state with the zoom level clamped to [0,1].
func NewViewState(orientation Orientation, mode DisplayMode, zoomLevel float64) ViewState {
	return ViewState{
		orientation: orientation,
		mode:        mode,
		zoomLevel:   zoom.Clamp(zoomLevel),
	}
}

func (s ViewState) Orientation() Orientation { return s.orientation }
func (s ViewState) Mode() DisplayMode        { return s.mode }
func (s ViewState) ZoomLevel() float64       { return s.zoomLevel }
func (s ViewState) ViewportOffset() float64  { return s.viewportOffset }
func (s ViewState) FocusedDate() time.Time   { return s.focusedDate }
func (s ViewState) SelectedEventID() string  { return s.selectedEventID }

// Tier derives the discrete zoom tier from the zoom level.
func (s ViewState) Tier() zoom.Tier { return zoom.TierFor(s.zoomLevel) }

// PixelsPerDay derives the time scale from the zoom level.
func (s ViewState) PixelsPerDay() float64 { return zoom.PixelsPerDay(s.zoomLevel) }

// IsExpanded reports whether a cluster has been opened by the user.
func (s ViewState) IsExpanded(clusterID string) bool { return s.expanded[clusterID] }

// ExpandedClusterIDs returns a copy of the expanded-cluster set.
func (s ViewState) ExpandedClusterIDs() map[string]bool {
	out := make(map[string]bool, len(s.expanded))
	for id := range s.expanded {
		out[id] = true
	}
	return out
}

// WithZoomLevel returns a state at the clamped new zoom level. Tier and
// scale follow automatically since they are derived.
func (s ViewState) WithZoomLevel(level float64) ViewState {
	s.zoomLevel = zoom.Clamp(level)
	return s
}

// WithOrientation returns a state with the given axis orientation.
func (s ViewState) WithOrientation(o Orientation) ViewState {
	s.orientation = o
	return s
}

// WithMode returns a state with the given display mode.
func (s ViewState) WithMode(m DisplayMode) ViewState {
	s.mode = m
	return s
}

// WithViewportOffset returns a state scrolled to the given offset.
func (s ViewState) WithViewportOffset(px float64) ViewState {
	s.viewportOffset = px
	return s
}

// WithFocusedDate returns a state focused on the given date.
func (s ViewState) WithFocusedDate(d time.Time) ViewState {
	s.focusedDate = d
	return s
}

// WithSelection returns a state with the given event selected. Empty
// clears the selection.
func (s ViewState) WithSelection(eventID string) ViewState {
	s.selectedEventID = eventID
	return s
}

// WithClusterExpanded returns a state with the cluster's disclosure
// toggled. The expanded set is copied; the receiver is untouched.
func (s ViewState) WithClusterExpanded(clusterID string, expanded bool) ViewState {
	next := make(map[string]bool, len(s.expanded)+1)
	for id := range s.expanded {
		next[id] = true
	}
	if expanded {
		next[clusterID] = true
	} else {
		delete(next, clusterID)
	}
	s.expanded = next
	return s
}

// CenterOffsetFor computes the viewport offset that centers the given date
// in a viewport of the given primary-axis extent.
func CenterOffsetFor(d, minDate time.Time, pixelsPerDay, viewportExtent float64) float64 {
	return zoom.Position(d, minDate, pixelsPerDay) - viewportExtent/2
}

// Hash computes a content-addressed hash of the view state, for use with
// event.SetHash as a host-side layout cache key.
func (s ViewState) Hash() (string, error) {
	expanded := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		expanded = append(expanded, id)
	}
	sort.Strings(expanded)

	m := map[string]any{
		"orientation":     s.orientation.String(),
		"mode":            s.mode.String(),
		"zoom_level":      s.zoomLevel,
		"viewport_offset": s.viewportOffset,
		"focused_ts_ms":   s.focusedDate.UTC().UnixMilli(),
		"selected":        s.selectedEventID,
		"expanded":        expanded,
	}
	data, err := event.MarshalCanonical(m)
	if err != nil {
		return "", fmt.Errorf("ViewState.Hash: failed to marshal: %w", err)
	}
	return event.HashWithDomain(event.DomainViewState, data), nil
}
