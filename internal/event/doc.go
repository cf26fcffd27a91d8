// Package event defines the timeline event record consumed by the layout
// engine, plus canonical serialization and content-addressed hashing.
//
// Events are owned by the caller and treated as immutable once passed in.
// The engine never persists them; persistence, sync, and filtering UI are
// collaborator concerns.
//
// Canonical JSON here follows the RFC 8785 conventions the rest of the
// codebase relies on for deterministic identity:
//   - object keys sorted
//   - strings NFC normalized, no HTML escaping
//   - floats rendered with shortest round-trip formatting; NaN/Inf rejected
//
// Content hashes (SHA-256 with domain separation) give hosts stable cache
// keys: a layout is a pure function of (event set, view state), so
// EventSetHash plus the view-state hash identifies a layout exactly.
package event
