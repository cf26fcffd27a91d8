// Package harness provides conformance testing for the layout engine.
//
// The harness loads YAML scenarios (events plus a view state plus
// expectations), runs the full chronological-view pipeline and the river
// flow builder on them, and validates assertions as executable contract
// tests.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	events:
//	  - id: e1
//	    timestamp: 2024-01-01T10:00:00Z
//	    event_type: photo
//	    owner_id: p1
//	view:
//	  orientation: vertical
//	  mode: minimal
//	  zoom_level: 0.3
//	assertions:
//	  - type: node_count
//	    count: 2
//	  - type: cluster_count
//	    count: 1
//
// Events may also come from a fixture file via events_file.
//
// # Assertion Types
//
//   - node_count: total render nodes produced
//   - cluster_count: nodes that are clusters
//   - event_node_count: nodes that are single events
//   - path_count: river paths
//   - intersection_count: river intersections
//   - label_visible_count: layout nodes with a visible label
//   - events_accounted: conservation check, every input event in exactly one node
//   - no_card_overlap: no two cards overlap on the primary axis
//
// # Deterministic Testing
//
// The engine is pure, so identical scenarios produce identical output;
// golden snapshot files (testdata/golden) pin the canonical JSON of a
// scenario's full output for byte-exact comparison via goldie.
package harness
