package source

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/riverline/riverline/internal/event"
)

// fixtureFile is the YAML shape for event fixtures:
//
//	events:
//	  - id: e1
//	    timestamp: 2024-01-01T10:00:00Z
//	    event_type: photo
//	    owner_id: p1
//	    participant_ids: [p2]
//	    tags: [travel]
type fixtureFile struct {
	Events []event.TimelineEvent `yaml:"events"`
}

// LoadFixture reads an event fixture YAML file. Unknown fields are
// rejected to catch typos; required fields and ID uniqueness are
// validated so malformed fixtures fail at the boundary.
func LoadFixture(path string) ([]event.TimelineEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes and validates fixture YAML.
func ParseFixture(data []byte) ([]event.TimelineEvent, error) {
	var file fixtureFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	seen := make(map[string]bool, len(file.Events))
	for i, e := range file.Events {
		if e.ID == "" {
			return nil, fmt.Errorf("events[%d]: id is required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("events[%d]: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = true
		if e.Timestamp.IsZero() {
			return nil, fmt.Errorf("events[%d] (%s): timestamp is required", i, e.ID)
		}
		if e.Type == "" {
			return nil, fmt.Errorf("events[%d] (%s): event_type is required", i, e.ID)
		}
		if e.OwnerID == "" {
			return nil, fmt.Errorf("events[%d] (%s): owner_id is required", i, e.ID)
		}
	}

	return file.Events, nil
}
