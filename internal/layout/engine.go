package layout

import (
	"math"
	"sort"
	"time"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/geom"
	"github.com/riverline/riverline/internal/render"
	"github.com/riverline/riverline/internal/theme"
	"github.com/riverline/riverline/internal/zoom"
)

// LayoutNode pairs a render node with its computed geometry for one pass.
// Layout nodes are produced fresh on every pass and never persisted.
type LayoutNode struct {
	Node render.Node

	// PrimaryPx is the node's position on the time axis.
	PrimaryPx float64

	// Marker is the marker center point.
	Marker geom.Point

	// Card is the card rectangle in maximal display mode, nil in minimal.
	Card *geom.Rect

	// LabelVisible reports whether the node's label survived density
	// thinning and card packing.
	LabelVisible bool

	// Selected marks the node matching the view state's selection.
	Selected bool
}

// MinDate returns the anchor date for a set of events: midnight UTC of the
// earliest timestamp. Zero time for an empty set.
func MinDate(events []event.TimelineEvent) time.Time {
	if len(events) == 0 {
		return time.Time{}
	}
	min := events[0].Timestamp
	for _, e := range events[1:] {
		if e.Timestamp.Before(min) {
			min = e.Timestamp
		}
	}
	min = min.UTC()
	return time.Date(min.Year(), min.Month(), min.Day(), 0, 0, 0, 0, time.UTC)
}

// Compute runs the full pipeline for the chronological view: filter,
// cluster at the view's tier, and place. An empty (or fully filtered-out)
// event list produces an empty layout, never an error.
func Compute(events []event.TimelineEvent, cfg RenderConfig) []LayoutNode {
	filtered := cfg.FilterEvents(events)
	nodes := render.Cluster(filtered, cfg.View.Tier(), cfg.View.ExpandedClusterIDs())
	return PlaceNodes(nodes, cfg.View, MinDate(filtered), cfg.Theme)
}

// PlaceNodes assigns geometry to render nodes.
//
// Nodes are placed in chronological order (ties broken by node ID so the
// output is fully deterministic). In maximal mode, cards pack greedily:
// push forward past the previous card, shrink and drop the label when
// pushed more than one card extent off the marker. Packing never fails;
// it only degrades labels and card sizes.
func PlaceNodes(nodes []render.Node, view ViewState, anchor time.Time, th theme.Theme) []LayoutNode {
	ordered := make([]render.Node, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Start().Equal(ordered[j].Start()) {
			return ordered[i].Start().Before(ordered[j].Start())
		}
		return ordered[i].NodeID() < ordered[j].NodeID()
	})

	ppd := view.PixelsPerDay()
	out := make([]LayoutNode, 0, len(ordered))
	for _, n := range ordered {
		primary := zoom.Position(n.Start(), anchor, ppd)
		out = append(out, LayoutNode{
			Node:         n,
			PrimaryPx:    primary,
			Marker:       markerAt(primary, view.Orientation(), th),
			LabelVisible: true,
			Selected:     n.NodeID() == view.SelectedEventID(),
		})
	}

	thinLabels(out, th.LabelMinWidth)

	if view.Mode() == Maximal {
		packCards(out, view.Orientation(), th)
	}

	return out
}

func markerAt(primary float64, o Orientation, th theme.Theme) geom.Point {
	if o == Horizontal {
		return geom.Point{X: primary, Y: th.AxisOffset}
	}
	return geom.Point{X: th.AxisOffset, Y: primary}
}

// thinLabels hides all but the first label in each run of markers closer
// together than the minimum label width. A marker too close to its
// predecessor loses its label, so only the run's first marker keeps one.
func thinLabels(nodes []LayoutNode, minWidth float64) {
	for i := 1; i < len(nodes); i++ {
		if nodes[i].PrimaryPx-nodes[i-1].PrimaryPx < minWidth {
			nodes[i].LabelVisible = false
		}
	}
}

// packCards assigns card rectangles with no primary-axis overlap.
func packCards(nodes []LayoutNode, o Orientation, th theme.Theme) {
	extent := th.CardHeight
	minExtent := th.CardMinHeight
	if o == Horizontal {
		extent = th.CardWidth
		minExtent = th.CardMinWidth
	}
	cross := th.AxisOffset + th.MarkerRadius + th.CardGap

	cursor := math.Inf(-1)
	for i := range nodes {
		desired := nodes[i].PrimaryPx - extent/2
		start := desired
		if start < cursor {
			start = cursor
		}
		size := extent
		if start-desired > extent {
			// Pushed a full card off its marker: shrink and give up
			// on the label rather than drift further.
			size = minExtent
			nodes[i].LabelVisible = false
		}
		cursor = start + size + th.CardGap

		var card geom.Rect
		if o == Horizontal {
			card = geom.Rect{X: start, Y: cross, W: size, H: th.CardHeight}
		} else {
			card = geom.Rect{X: cross, Y: start, W: th.CardWidth, H: size}
		}
		nodes[i].Card = &card
	}
}
