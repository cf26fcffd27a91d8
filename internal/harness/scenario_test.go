package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverline/riverline/internal/layout"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalScenario = `name: sample
description: "A sample scenario"
events:
  - id: e1
    timestamp: 2024-01-01T10:00:00Z
    event_type: photo
    owner_id: p1
view:
  zoom_level: 0.3
assertions:
  - type: node_count
    count: 1
`

func TestLoadScenario_Valid(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, minimalScenario))

	require.NoError(t, err)
	assert.Equal(t, "sample", sc.Name)
	require.Len(t, sc.Events, 1)
	assert.Equal(t, "e1", sc.Events[0].ID)
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "description: d\nevents:\n  - id: e1\n    timestamp: 2024-01-01T10:00:00Z\n    event_type: photo\n    owner_id: p1\nview: {zoom_level: 0.3}\nassertions:\n  - type: node_count\n    count: 1\n"},
		{"missing description", "name: n\nevents:\n  - id: e1\n    timestamp: 2024-01-01T10:00:00Z\n    event_type: photo\n    owner_id: p1\nview: {zoom_level: 0.3}\nassertions:\n  - type: node_count\n    count: 1\n"},
		{"no events", "name: n\ndescription: d\nview: {zoom_level: 0.3}\nassertions:\n  - type: node_count\n    count: 1\n"},
		{"no assertions", "name: n\ndescription: d\nevents:\n  - id: e1\n    timestamp: 2024-01-01T10:00:00Z\n    event_type: photo\n    owner_id: p1\nview: {zoom_level: 0.3}\n"},
		{"unknown assertion type", "name: n\ndescription: d\nevents:\n  - id: e1\n    timestamp: 2024-01-01T10:00:00Z\n    event_type: photo\n    owner_id: p1\nview: {zoom_level: 0.3}\nassertions:\n  - type: bogus\n"},
		{"zoom out of range", "name: n\ndescription: d\nevents:\n  - id: e1\n    timestamp: 2024-01-01T10:00:00Z\n    event_type: photo\n    owner_id: p1\nview: {zoom_level: 1.5}\nassertions:\n  - type: node_count\n    count: 1\n"},
		{"unknown top-level field", "name: n\ndescription: d\nbogus: true\nevents:\n  - id: e1\n    timestamp: 2024-01-01T10:00:00Z\n    event_type: photo\n    owner_id: p1\nview: {zoom_level: 0.3}\nassertions:\n  - type: node_count\n    count: 1\n"},
		{"missing events file", "name: n\ndescription: d\nevents_file: does-not-exist.yaml\nview: {zoom_level: 0.3}\nassertions:\n  - type: node_count\n    count: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestViewSpec_ViewState(t *testing.T) {
	spec := ViewSpec{
		Orientation: "horizontal",
		Mode:        "maximal",
		ZoomLevel:   0.5,
		Expanded:    []string{"c1"},
		Selected:    "e9",
	}

	state, err := spec.ViewState()

	require.NoError(t, err)
	assert.Equal(t, layout.Horizontal, state.Orientation())
	assert.Equal(t, layout.Maximal, state.Mode())
	assert.Equal(t, 0.5, state.ZoomLevel())
	assert.True(t, state.IsExpanded("c1"))
	assert.Equal(t, "e9", state.SelectedEventID())
}

func TestViewSpec_Defaults(t *testing.T) {
	state, err := ViewSpec{ZoomLevel: 0.3}.ViewState()

	require.NoError(t, err)
	assert.Equal(t, layout.Vertical, state.Orientation())
	assert.Equal(t, layout.Minimal, state.Mode())
}

func TestViewSpec_Invalid(t *testing.T) {
	_, err := ViewSpec{Orientation: "diagonal", ZoomLevel: 0.3}.ViewState()
	assert.Error(t, err)

	_, err = ViewSpec{Mode: "fancy", ZoomLevel: 0.3}.ViewState()
	assert.Error(t, err)
}

func TestLoadScenario_EventsFileResolvedRelative(t *testing.T) {
	dir := t.TempDir()
	fixture := `events:
  - id: e1
    timestamp: 2024-01-01T10:00:00Z
    event_type: photo
    owner_id: p1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events.yaml"), []byte(fixture), 0o644))
	scenario := `name: n
description: d
events_file: events.yaml
view: {zoom_level: 0.3}
assertions:
  - type: node_count
    count: 1
`
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	events, err := sc.ResolveEvents()
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
