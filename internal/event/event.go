package event

import (
	"sort"
	"time"
)

// TimelineEvent is one timestamped record on a timeline. It is plain data:
// the layout engine reads it and never mutates it.
type TimelineEvent struct {
	ID             string            `json:"id" yaml:"id"`
	Timestamp      time.Time         `json:"timestamp" yaml:"timestamp"`
	Type           string            `json:"event_type" yaml:"event_type"`
	Title          string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	ParticipantIDs []string          `json:"participant_ids,omitempty" yaml:"participant_ids,omitempty"`
	OwnerID        string            `json:"owner_id" yaml:"owner_id"`
	Tags           []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	HasMedia       bool              `json:"has_media,omitempty" yaml:"has_media,omitempty"`
	MediaCount     int               `json:"media_count,omitempty" yaml:"media_count,omitempty"`
	Attributes     map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// CombinedParticipants returns the event's owner plus explicit participants,
// deduplicated, owner first, then participants in declaration order. An
// event with no explicit participants still has one member: its owner.
func (e TimelineEvent) CombinedParticipants() []string {
	out := make([]string, 0, len(e.ParticipantIDs)+1)
	seen := make(map[string]bool, len(e.ParticipantIDs)+1)
	if e.OwnerID != "" {
		out = append(out, e.OwnerID)
		seen[e.OwnerID] = true
	}
	for _, id := range e.ParticipantIDs {
		if id == "" || seen[id] {
			continue
		}
		out = append(out, id)
		seen[id] = true
	}
	return out
}

// HasTag reports whether the event carries the given tag.
func (e TimelineEvent) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SortByTime returns a copy of events sorted ascending by timestamp.
// The sort is stable so same-instant events keep their input order,
// which keeps downstream clustering deterministic.
func SortByTime(events []TimelineEvent) []TimelineEvent {
	out := make([]TimelineEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
