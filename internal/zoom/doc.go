// Package zoom maps a continuous zoom level in [0,1] to a discrete zoom
// tier and a pixels-per-day scale, and converts between dates and
// primary-axis pixel positions.
//
// All derivations are pure functions of the zoom level. Tier and scale are
// never stored separately from the level that produced them, so they can
// never drift out of sync.
//
// Date/position mapping is day-granular: converting a date to a position
// and back recovers the same calendar day, but sub-day precision is lost.
// That is documented lossy behavior, not a bug.
package zoom
