// Package render defines the render node model and the clustering engine.
//
// A render node is either an EventNode (one event) or a ClusterNode (an
// aggregate of temporally-close events). The Node interface plus Kind tag
// gives switch-exhaustive handling without reflection.
//
// CLUSTERING:
//
// Events are partitioned into temporal buckets whose width follows the
// current zoom tier: year tier buckets by calendar year, month by calendar
// month, week by ISO week, day by calendar day, and focus passes every
// event through individually. A bucket with more than one event becomes a
// ClusterNode; a bucket with exactly one becomes an EventNode. Members of
// an expanded cluster always render individually regardless of bucket size
// (progressive disclosure overrides clustering).
//
// Cluster identity is content-addressed: a name-based UUID over the member
// event IDs. The same members always produce the same cluster ID, so an
// expansion recorded in one frame still matches in the next.
//
// The engine is deterministic: no randomness, no wall-clock reads, and
// ties in dominant-type counting resolve to whichever type reached the
// running maximum first in scan order.
package render
