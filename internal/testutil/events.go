// Package testutil provides deterministic event fixtures for tests.
//
// All builders anchor to a fixed base date so positions, buckets, and
// hashes are reproducible across runs and machines.
package testutil

import (
	"fmt"
	"time"

	"github.com/riverline/riverline/internal/event"
)

// BaseDate is the fixed anchor all fixture events count days from.
var BaseDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// EventAt builds an event on BaseDate+days with a deterministic ID-derived
// title and a default owner.
func EventAt(id, eventType string, days int) event.TimelineEvent {
	return event.TimelineEvent{
		ID:        id,
		Timestamp: BaseDate.AddDate(0, 0, days),
		Type:      eventType,
		Title:     "title-" + id,
		OwnerID:   "owner-1",
	}
}

// Series builds n events of the given type, spaced spacingDays apart,
// with IDs e000, e001, ...
func Series(n, spacingDays int, eventType string) []event.TimelineEvent {
	out := make([]event.TimelineEvent, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, EventAt(fmt.Sprintf("e%03d", i), eventType, i*spacingDays))
	}
	return out
}
