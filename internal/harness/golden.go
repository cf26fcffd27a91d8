package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/layout"
	"github.com/riverline/riverline/internal/render"
	"github.com/riverline/riverline/internal/river"
)

// RunWithGolden executes a scenario and compares its full output against
// a golden file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// The snapshot uses canonical JSON, so golden comparison is byte-exact
// and stable across runs and platforms.
func RunWithGolden(t *testing.T, sc *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(sc)
	if err != nil {
		return nil, err
	}

	data, err := event.MarshalCanonical(snapshotMap(sc.Name, result))
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, data)

	return result, nil
}

// snapshotMap flattens a result into canonical-JSON-compatible values.
func snapshotMap(name string, r *Result) map[string]any {
	nodes := make([]any, len(r.Layout))
	for i, ln := range r.Layout {
		nodes[i] = layoutNodeMap(ln)
	}

	paths := make([]any, len(r.Flow.Paths))
	for i, p := range r.Flow.Paths {
		paths[i] = pathMap(p)
	}

	intersections := make([]any, len(r.Flow.Intersections))
	for i, in := range r.Flow.Intersections {
		intersections[i] = map[string]any{
			"event_id":        in.EventID,
			"participant_ids": in.ParticipantIDs,
			"pos":             pointMap(in.Pos.X, in.Pos.Y),
		}
	}

	return map[string]any{
		"name":          name,
		"nodes":         nodes,
		"paths":         paths,
		"intersections": intersections,
	}
}

func layoutNodeMap(ln layout.LayoutNode) map[string]any {
	kind := "event"
	if ln.Node.Kind() == render.KindCluster {
		kind = "cluster"
	}
	m := map[string]any{
		"id":            ln.Node.NodeID(),
		"kind":          kind,
		"tier":          ln.Node.Tier().String(),
		"count":         ln.Node.Count(),
		"primary_px":    ln.PrimaryPx,
		"marker":        pointMap(ln.Marker.X, ln.Marker.Y),
		"label_visible": ln.LabelVisible,
	}
	if ln.Card != nil {
		m["card"] = map[string]any{
			"x": ln.Card.X,
			"y": ln.Card.Y,
			"w": ln.Card.W,
			"h": ln.Card.H,
		}
	}
	return m
}

func pathMap(p river.Path) map[string]any {
	nodes := make([]any, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = map[string]any{
			"event_id": n.EventID,
			"x":        n.Pos.X,
			"y":        n.Pos.Y,
		}
	}
	return map[string]any{
		"participant_id": p.ParticipantID,
		"color":          p.Color.Hex(),
		"origin":         pointMap(p.Origin.X, p.Origin.Y),
		"nodes":          nodes,
	}
}

func pointMap(x, y float64) map[string]any {
	return map[string]any{"x": x, "y": y}
}
