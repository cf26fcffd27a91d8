package harness

import (
	"fmt"

	"github.com/riverline/riverline/internal/layout"
	"github.com/riverline/riverline/internal/render"
	"github.com/riverline/riverline/internal/river"
	"github.com/riverline/riverline/internal/theme"
)

// Result holds everything a scenario execution produced.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool

	// Errors lists assertion failures (empty when Pass).
	Errors []string

	// Layout is the chronological-view output.
	Layout []layout.LayoutNode

	// Flow is the river-view output for the same filtered events.
	Flow river.Flow

	// EventCount is the number of events after filtering.
	EventCount int
}

// Run executes a scenario: resolve events, build the view state, run the
// layout pipeline and the river builder, then evaluate assertions.
//
// Run returns an error only for scenario-level problems (unreadable
// fixture, bad view spec); assertion failures land in Result.Errors.
func Run(sc *Scenario) (*Result, error) {
	events, err := sc.ResolveEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve events: %w", err)
	}

	view, err := sc.View.ViewState()
	if err != nil {
		return nil, fmt.Errorf("invalid view: %w", err)
	}

	th := theme.Default()
	cfg := layout.RenderConfig{Theme: th, View: view, Tags: sc.Tags}
	filtered := cfg.FilterEvents(events)

	result := &Result{
		Layout: layout.Compute(events, cfg),
		Flow: river.Build(filtered, river.Options{
			Palette:      th.Palette,
			LaneSpacing:  th.LaneSpacing,
			PixelsPerDay: view.PixelsPerDay(),
		}),
		EventCount: len(filtered),
	}

	for i, a := range sc.Assertions {
		if msg := evaluate(a, result); msg != "" {
			result.Errors = append(result.Errors, fmt.Sprintf("assertions[%d] %s: %s", i, a.Type, msg))
		}
	}
	result.Pass = len(result.Errors) == 0
	return result, nil
}

func evaluate(a Assertion, r *Result) string {
	switch a.Type {
	case AssertNodeCount:
		return expectCount(a.Count, len(r.Layout))
	case AssertClusterCount:
		return expectCount(a.Count, countKind(r.Layout, render.KindCluster))
	case AssertEventNodeCount:
		return expectCount(a.Count, countKind(r.Layout, render.KindEvent))
	case AssertPathCount:
		return expectCount(a.Count, len(r.Flow.Paths))
	case AssertIntersectionCount:
		return expectCount(a.Count, len(r.Flow.Intersections))
	case AssertLabelVisibleCount:
		visible := 0
		for _, ln := range r.Layout {
			if ln.LabelVisible {
				visible++
			}
		}
		return expectCount(a.Count, visible)
	case AssertEventsAccounted:
		total := 0
		for _, ln := range r.Layout {
			total += ln.Node.Count()
		}
		if total != r.EventCount {
			return fmt.Sprintf("nodes account for %d events, input had %d", total, r.EventCount)
		}
		return ""
	case AssertNoCardOverlap:
		for i := 1; i < len(r.Layout); i++ {
			prev, cur := r.Layout[i-1].Card, r.Layout[i].Card
			if prev == nil || cur == nil {
				continue
			}
			if prev.OverlapsX(*cur) && prev.OverlapsY(*cur) {
				return fmt.Sprintf("cards %d and %d overlap", i-1, i)
			}
		}
		return ""
	default:
		return fmt.Sprintf("unknown assertion type %q", a.Type)
	}
}

func expectCount(want, got int) string {
	if want != got {
		return fmt.Sprintf("expected %d, got %d", want, got)
	}
	return ""
}

func countKind(nodes []layout.LayoutNode, kind render.Kind) int {
	n := 0
	for _, ln := range nodes {
		if ln.Node.Kind() == kind {
			n++
		}
	}
	return n
}
