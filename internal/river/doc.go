// Package river builds the multi-person "river" flow visualization: one
// time-ordered path per participant, with shared events surfacing as
// stream intersections.
//
// Paths are derived, never pre-declared: a person appears exactly when an
// event references them (as owner or explicit participant), and a person
// with no events gets no path. An event with an owner and no explicit
// participants still flows through exactly one path: the owner's.
//
// Colors are stable across runs: the palette is indexed by first
// appearance order, and once more participants exist than palette
// entries, the overflow participants hash their ID into the palette so a
// person keeps their color regardless of who else shows up.
//
// Like the layout engine, the builder is pure and deterministic.
package river
