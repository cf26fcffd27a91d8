package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `events:
  - id: e1
    timestamp: 2024-01-01T10:00:00Z
    event_type: photo
    title: First photo
    owner_id: p1
  - id: e2
    timestamp: 2024-01-03T10:00:00Z
    event_type: note
    title: A note
    owner_id: p1
    participant_ids: [p2]
    tags: [travel]
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))
	return path
}

func TestLayoutCommandText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLayoutCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writeFixture(t), "--zoom", "1.0"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "tier=focus")
	assert.Contains(t, output, "e1")
	assert.Contains(t, output, "e2")
}

func TestLayoutCommandJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLayoutCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writeFixture(t), "--zoom", "1.0", "--mode", "maximal"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "focus", data["tier"])
	assert.Equal(t, 2.0, data["event_count"])

	nodes := data["nodes"].([]any)
	require.Len(t, nodes, 2)
	first := nodes[0].(map[string]any)
	assert.Equal(t, "e1", first["id"])
	assert.Equal(t, "event", first["kind"])
	assert.NotNil(t, first["card"], "maximal mode places cards")
}

func TestLayoutCommandClustersAtCoarseTier(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLayoutCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writeFixture(t), "--zoom", "0.3"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "month", data["tier"])

	nodes := data["nodes"].([]any)
	require.Len(t, nodes, 1)
	assert.Equal(t, "cluster", nodes[0].(map[string]any)["kind"])
	assert.Equal(t, 2.0, nodes[0].(map[string]any)["count"])
}

func TestLayoutCommandTagFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLayoutCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writeFixture(t), "--zoom", "1.0", "--tags", "travel"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, 1.0, data["event_count"])
}

func TestLayoutCommandDateRange(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLayoutCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writeFixture(t), "--zoom", "1.0", "--from", "2024-01-02"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, 1.0, data["event_count"])
	nodes := data["nodes"].([]any)
	require.Len(t, nodes, 1)
	assert.Equal(t, "e2", nodes[0].(map[string]any)["id"])
}

func TestLayoutCommandMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLayoutCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"/nonexistent/events.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLayoutCommandInvalidOrientation(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewLayoutCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{writeFixture(t), "--orientation", "diagonal"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRiverCommandJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRiverCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writeFixture(t), "--zoom", "1.0"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	paths := data["paths"].([]any)
	require.Len(t, paths, 2, "p1 and p2 each get a lane")
	assert.Equal(t, "p1", paths[0].(map[string]any)["participant_id"])

	intersections := data["intersections"].([]any)
	require.Len(t, intersections, 1, "e2 joins p1 and p2")
}

func TestRiverCommandText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRiverCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writeFixture(t)})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "paths=2")
	assert.Contains(t, output, "intersections=1")
	assert.Contains(t, output, "junction e2")
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, 15, d.Day())

	d, err = parseDate("2024-06-15T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, d.Hour())

	d, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = parseDate("June 15")
	assert.Error(t, err)
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, splitTags(""))
	assert.Equal(t, []string{"a", "b"}, splitTags("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitTags(" a , b ,"))
}
