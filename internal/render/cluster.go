package render

import (
	"time"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/zoom"
)

// bucketKey identifies the temporal bucket an event falls into at a tier.
// Buckets are calendar-aligned, so for time-sorted input all members of a
// bucket are contiguous.
type bucketKey struct {
	a, b, c int
}

func keyFor(tier zoom.Tier, ts time.Time) bucketKey {
	switch tier {
	case zoom.TierYear:
		return bucketKey{a: ts.Year()}
	case zoom.TierMonth:
		return bucketKey{a: ts.Year(), b: int(ts.Month())}
	case zoom.TierWeek:
		y, w := ts.ISOWeek()
		return bucketKey{a: y, b: w}
	default: // zoom.TierDay
		return bucketKey{a: ts.Year(), b: int(ts.Month()), c: ts.Day()}
	}
}

// Cluster partitions events into render nodes for the given tier.
//
// Events are sorted by time, then grouped into calendar buckets sized by
// the tier. A multi-event bucket becomes a ClusterNode unless its cluster
// ID appears in expandedIDs, in which case its members emit as individual
// EventNodes (progressive disclosure). Single-event buckets and the focus
// tier always emit EventNodes.
//
// Every input event appears in exactly one output node. An empty input
// yields an empty (non-nil) node list, not an error.
func Cluster(events []event.TimelineEvent, tier zoom.Tier, expandedIDs map[string]bool) []Node {
	nodes := make([]Node, 0, len(events))
	if len(events) == 0 {
		return nodes
	}

	sorted := event.SortByTime(events)

	if tier == zoom.TierFocus {
		for _, e := range sorted {
			nodes = append(nodes, NewEventNode(e, tier))
		}
		return nodes
	}

	flush := func(bucket []event.TimelineEvent) {
		if len(bucket) == 0 {
			return
		}
		if len(bucket) == 1 {
			nodes = append(nodes, NewEventNode(bucket[0], tier))
			return
		}
		if expandedIDs[ClusterID(bucket)] {
			for _, e := range bucket {
				nodes = append(nodes, NewEventNode(e, tier))
			}
			return
		}
		nodes = append(nodes, MustClusterNode(bucket, tier))
	}

	var bucket []event.TimelineEvent
	current := keyFor(tier, sorted[0].Timestamp)
	for _, e := range sorted {
		k := keyFor(tier, e.Timestamp)
		if k != current {
			flush(bucket)
			bucket = nil
			current = k
		}
		bucket = append(bucket, e)
	}
	flush(bucket)

	return nodes
}

// CountEvents sums the underlying event count across nodes. Useful for
// conservation checks: clustering never drops or duplicates an event.
func CountEvents(nodes []Node) int {
	total := 0
	for _, n := range nodes {
		total += n.Count()
	}
	return total
}
