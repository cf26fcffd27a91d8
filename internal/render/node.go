package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/zoom"
)

// Kind tags the two node variants so callers can switch exhaustively.
type Kind int

const (
	KindEvent Kind = iota
	KindCluster
)

// Node is a render node: either a single event or a cluster of events.
// Implementations are immutable once constructed.
type Node interface {
	// NodeID uniquely identifies the node. Event nodes reuse the event
	// ID; cluster IDs are content-addressed over member event IDs.
	NodeID() string

	// Kind reports the variant.
	Kind() Kind

	// Start is the earliest timestamp the node covers.
	Start() time.Time

	// End is the latest timestamp the node covers. Start == End for
	// single-instant nodes; that is valid, not an error.
	End() time.Time

	// Tier is the zoom tier the node was built at.
	Tier() zoom.Tier

	// Label is the display text: the event title, or a count summary
	// for clusters.
	Label() string

	// Count is the number of underlying events (1 for event nodes).
	Count() int
}

// EventNode wraps a single event.
type EventNode struct {
	Event event.TimelineEvent

	tier zoom.Tier
}

// NewEventNode wraps one event at the given tier.
func NewEventNode(e event.TimelineEvent, tier zoom.Tier) EventNode {
	return EventNode{Event: e, tier: tier}
}

func (n EventNode) NodeID() string   { return n.Event.ID }
func (n EventNode) Kind() Kind       { return KindEvent }
func (n EventNode) Start() time.Time { return n.Event.Timestamp }
func (n EventNode) End() time.Time   { return n.Event.Timestamp }
func (n EventNode) Tier() zoom.Tier  { return n.tier }
func (n EventNode) Label() string    { return n.Event.Title }
func (n EventNode) Count() int       { return 1 }

// ClusterNode aggregates two or more temporally-close events. It can also
// hold a single event when built directly via NewClusterNode; the
// clustering engine only emits clusters for multi-event buckets.
type ClusterNode struct {
	id           string
	events       []event.TimelineEvent
	tier         zoom.Tier
	start, end   time.Time
	typeCounts   map[string]int
	dominantType string
}

// clusterNamespace is the fixed namespace for name-based cluster UUIDs.
var clusterNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://riverline.dev/cluster/v1"))

// ClusterID computes the deterministic synthetic ID for a cluster over the
// given member events. Identical membership always yields the same ID.
func ClusterID(events []event.TimelineEvent) string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return uuid.NewSHA1(clusterNamespace, []byte(strings.Join(ids, "\x00"))).String()
}

// NewClusterNode builds a cluster from a non-empty event list.
// Constructing a cluster from an empty list is a contract violation and
// returns ErrCodeEmptyCluster; it never silently produces a zero-count
// cluster.
//
// The span is min/max member timestamp. Type counts accumulate in input
// order, and the dominant type is the one whose counter reached the
// running maximum first (stable on ties, no re-sort).
func NewClusterNode(events []event.TimelineEvent, tier zoom.Tier) (ClusterNode, error) {
	if len(events) == 0 {
		return ClusterNode{}, NewEmptyClusterError()
	}

	members := make([]event.TimelineEvent, len(events))
	copy(members, events)

	start, end := members[0].Timestamp, members[0].Timestamp
	typeCounts := make(map[string]int)
	dominant := ""
	best := 0
	for _, e := range members {
		if e.Timestamp.Before(start) {
			start = e.Timestamp
		}
		if e.Timestamp.After(end) {
			end = e.Timestamp
		}
		typeCounts[e.Type]++
		if typeCounts[e.Type] > best {
			best = typeCounts[e.Type]
			dominant = e.Type
		}
	}

	return ClusterNode{
		id:           ClusterID(members),
		events:       members,
		tier:         tier,
		start:        start,
		end:          end,
		typeCounts:   typeCounts,
		dominantType: dominant,
	}, nil
}

// MustClusterNode is like NewClusterNode but panics on error. Use only in
// tests or when inputs are known to be non-empty.
func MustClusterNode(events []event.TimelineEvent, tier zoom.Tier) ClusterNode {
	n, err := NewClusterNode(events, tier)
	if err != nil {
		panic(err)
	}
	return n
}

func (n ClusterNode) NodeID() string   { return n.id }
func (n ClusterNode) Kind() Kind       { return KindCluster }
func (n ClusterNode) Start() time.Time { return n.start }
func (n ClusterNode) End() time.Time   { return n.end }
func (n ClusterNode) Tier() zoom.Tier  { return n.tier }
func (n ClusterNode) Count() int       { return len(n.events) }

// Label summarizes the cluster for display.
func (n ClusterNode) Label() string {
	return fmt.Sprintf("%d events", len(n.events))
}

// Events returns the member events in their clustering order.
// The returned slice is a copy; clusters stay immutable.
func (n ClusterNode) Events() []event.TimelineEvent {
	out := make([]event.TimelineEvent, len(n.events))
	copy(out, n.events)
	return out
}

// TypeCounts returns a copy of the per-type member counts.
func (n ClusterNode) TypeCounts() map[string]int {
	out := make(map[string]int, len(n.typeCounts))
	for k, v := range n.typeCounts {
		out[k] = v
	}
	return out
}

// DominantType is the most frequent member event type, ties broken by
// first type to reach the maximum count in scan order. Drives the
// cluster's icon and color.
func (n ClusterNode) DominantType() string { return n.dominantType }
