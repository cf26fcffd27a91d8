package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/layout"
	"github.com/riverline/riverline/internal/source"
)

// Scenario defines a conformance test: events in, expectations out.
type Scenario struct {
	// Name uniquely identifies this scenario; it doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Events lists inline events. Mutually exclusive with EventsFile.
	Events []event.TimelineEvent `yaml:"events,omitempty"`

	// EventsFile points to a fixture YAML, relative to the scenario file.
	EventsFile string `yaml:"events_file,omitempty"`

	// View configures the view state for the pass.
	View ViewSpec `yaml:"view"`

	// Tags filters events before layout (see layout.RenderConfig).
	Tags []string `yaml:"tags,omitempty"`

	// Assertions validate the resulting layout and river flow.
	Assertions []Assertion `yaml:"assertions"`
}

// ViewSpec is the YAML form of a view state.
type ViewSpec struct {
	Orientation string   `yaml:"orientation"` // "vertical" | "horizontal"
	Mode        string   `yaml:"mode"`        // "minimal" | "maximal"
	ZoomLevel   float64  `yaml:"zoom_level"`
	Expanded    []string `yaml:"expanded,omitempty"` // expanded cluster IDs
	Selected    string   `yaml:"selected,omitempty"` // selected event ID
}

// ViewState converts the YAML form into an immutable view state.
func (v ViewSpec) ViewState() (layout.ViewState, error) {
	var o layout.Orientation
	switch v.Orientation {
	case "vertical", "":
		o = layout.Vertical
	case "horizontal":
		o = layout.Horizontal
	default:
		return layout.ViewState{}, fmt.Errorf("unknown orientation %q", v.Orientation)
	}

	var m layout.DisplayMode
	switch v.Mode {
	case "minimal", "":
		m = layout.Minimal
	case "maximal":
		m = layout.Maximal
	default:
		return layout.ViewState{}, fmt.Errorf("unknown mode %q", v.Mode)
	}

	if v.ZoomLevel < 0 || v.ZoomLevel > 1 {
		return layout.ViewState{}, fmt.Errorf("zoom_level %v outside [0,1]", v.ZoomLevel)
	}

	s := layout.NewViewState(o, m, v.ZoomLevel).WithSelection(v.Selected)
	for _, id := range v.Expanded {
		s = s.WithClusterExpanded(id, true)
	}
	return s, nil
}

// Assertion validates one property of the scenario's output.
type Assertion struct {
	// Type selects the assertion; see the package doc for the list.
	Type string `yaml:"type"`

	// Count is the expected value for counting assertions.
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertNodeCount         = "node_count"
	AssertClusterCount      = "cluster_count"
	AssertEventNodeCount    = "event_node_count"
	AssertPathCount         = "path_count"
	AssertIntersectionCount = "intersection_count"
	AssertLabelVisibleCount = "label_visible_count"
	AssertEventsAccounted   = "events_accounted"
	AssertNoCardOverlap     = "no_card_overlap"
)

var countingAssertions = map[string]bool{
	AssertNodeCount:         true,
	AssertClusterCount:      true,
	AssertEventNodeCount:    true,
	AssertPathCount:         true,
	AssertIntersectionCount: true,
	AssertLabelVisibleCount: true,
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected (catches typos); events_file paths resolve relative to the
// scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if sc.EventsFile != "" && !filepath.IsAbs(sc.EventsFile) {
		sc.EventsFile = filepath.Join(filepath.Dir(path), sc.EventsFile)
	}

	if err := validateScenario(&sc); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &sc, nil
}

// ResolveEvents returns the scenario's events, loading the fixture file
// when one is referenced.
func (s *Scenario) ResolveEvents() ([]event.TimelineEvent, error) {
	if s.EventsFile != "" {
		return source.LoadFixture(s.EventsFile)
	}
	return s.Events, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Events) > 0 && s.EventsFile != "" {
		return fmt.Errorf("events and events_file are mutually exclusive")
	}
	if len(s.Events) == 0 && s.EventsFile == "" {
		return fmt.Errorf("events or events_file is required")
	}
	if s.EventsFile != "" {
		if _, err := os.Stat(s.EventsFile); os.IsNotExist(err) {
			return fmt.Errorf("events file not found: %s", s.EventsFile)
		}
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}
	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	if _, err := s.View.ViewState(); err != nil {
		return fmt.Errorf("view: %w", err)
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}
	switch {
	case countingAssertions[a.Type]:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case a.Type == AssertEventsAccounted, a.Type == AssertNoCardOverlap:
		// No parameters.
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
