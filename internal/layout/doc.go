// Package layout assigns visual geometry to render nodes.
//
// The engine is a pure function: (render nodes, view state, anchor date,
// theme) in, positioned layout nodes out. No hidden state, no I/O, no
// randomness; identical inputs yield identical output, so hosts may cache
// layouts keyed by (event set hash, view state hash) and may discard stale
// in-flight computations by ignoring their results.
//
// PLACEMENT:
//
// Every node gets a primary-axis pixel position from its start time and a
// marker center. In maximal display mode each node also gets a card
// rectangle. Cards pack greedily along the primary axis: a card whose
// preferred slot overlaps its predecessor is pushed forward, and a card
// pushed more than one full card height off its marker shrinks to the
// minimum height and drops its label. Two visible cards never overlap on
// the primary axis; packing pressure degrades quality, never errors.
//
// Label visibility additionally thins out under marker density: within a
// run of markers closer together than the minimum label width, only the
// first marker keeps its label.
package layout
