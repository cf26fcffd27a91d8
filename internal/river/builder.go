package river

import (
	"time"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/geom"
	"github.com/riverline/riverline/internal/theme"
	"github.com/riverline/riverline/internal/zoom"
)

// Options configures the river flow builder. Zero-value fields fall back
// to defaults so callers can set only what they care about.
type Options struct {
	// Palette provides participant colors. Defaults to the default
	// theme's palette.
	Palette []geom.ColorRGBA

	// LaneSpacing separates participant lanes on the cross axis.
	// Defaults to the default theme's lane spacing.
	LaneSpacing float64

	// PixelsPerDay scales the shared time axis. Defaults to the scale at
	// zoom level 1.
	PixelsPerDay float64
}

func (o Options) withDefaults() Options {
	th := theme.Default()
	if len(o.Palette) == 0 {
		o.Palette = th.Palette
	}
	if o.LaneSpacing <= 0 {
		o.LaneSpacing = th.LaneSpacing
	}
	if o.PixelsPerDay <= 0 {
		o.PixelsPerDay = zoom.MaxPixelsPerDay
	}
	return o
}

// Flow is the river flow builder's output: all participant paths plus the
// intersections where streams meet.
type Flow struct {
	Paths         []Path         `json:"paths"`
	Intersections []Intersection `json:"intersections"`
}

// Build derives the river flow for a filtered event list.
//
// The time axis is shared: positions are day offsets from the earliest
// event, scaled by PixelsPerDay. Each participant gets a lane on the
// cross axis in first-appearance order. For every event whose combined
// {owner, participants} set has two or more members, an intersection is
// emitted at the mean of the involved lanes.
//
// Empty input produces an empty flow, not an error.
func Build(events []event.TimelineEvent, opts Options) Flow {
	opts = opts.withDefaults()

	flow := Flow{Paths: []Path{}, Intersections: []Intersection{}}
	if len(events) == 0 {
		return flow
	}

	sorted := event.SortByTime(events)
	anchor := dayFloor(sorted[0].Timestamp)

	// Lanes assigned in first-appearance order over the sorted events,
	// owner before explicit participants within one event.
	laneOf := make(map[string]int)
	var order []string
	for _, e := range sorted {
		for _, id := range e.CombinedParticipants() {
			if _, ok := laneOf[id]; !ok {
				laneOf[id] = len(order)
				order = append(order, id)
			}
		}
	}

	paths := make(map[string]*Path, len(order))
	for i, id := range order {
		origin := geom.Point{X: 0, Y: float64(i) * opts.LaneSpacing}
		paths[id] = &Path{
			ParticipantID: id,
			Color:         ColorFor(id, i, opts.Palette),
			Origin:        origin,
		}
	}

	for _, e := range sorted {
		x := zoom.Position(e.Timestamp, anchor, opts.PixelsPerDay)
		members := e.CombinedParticipants()

		for _, id := range members {
			p := paths[id]
			pos := geom.Point{X: x, Y: float64(laneOf[id]) * opts.LaneSpacing}
			p.Nodes = append(p.Nodes, FlowNode{EventID: e.ID, Time: e.Timestamp, Pos: pos})
			p.Line = p.Line.Append(pos)
		}

		if len(members) >= 2 {
			laneSum := 0.0
			for _, id := range members {
				laneSum += float64(laneOf[id])
			}
			junctionY := laneSum / float64(len(members)) * opts.LaneSpacing
			flow.Intersections = append(flow.Intersections, Intersection{
				Pos:            geom.Point{X: x, Y: junctionY},
				EventID:        e.ID,
				ParticipantIDs: members,
			})
		}
	}

	for _, id := range order {
		flow.Paths = append(flow.Paths, *paths[id])
	}
	return flow
}

func dayFloor(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
