// Package source loads timeline events from collaborator-side stores so
// the CLI and conformance harness have something to feed the engine.
//
// Two sources exist: a SQLite reader over the host application's event
// tables, and a YAML fixture loader for scenarios and tests. Both produce
// plain event records; the engine itself never touches storage.
//
// The SQLite source opens the database with the usual pragmas (WAL,
// NORMAL synchronous, busy timeout, foreign keys) and reads with a
// deterministic ORDER BY so repeated loads yield identical slices.
package source
