package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/source"
)

// loadEvents reads events from a YAML fixture or, when useDB is set, a
// SQLite database laid out like the host application's event tables.
func loadEvents(path string, useDB bool) ([]event.TimelineEvent, error) {
	if useDB {
		store, err := source.Open(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadEvents()
	}
	return source.LoadFixture(path)
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

// splitTags turns a comma-separated flag value into a tag list.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
