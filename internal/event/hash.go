package event

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix
// enables future algorithm migration without colliding with old hashes.
const (
	DomainEventSet  = "riverline/eventset/v1"
	DomainViewState = "riverline/viewstate/v1"
)

// HashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte prevents
// domain/data boundary ambiguity.
func HashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// SetHash computes a content-addressed hash of an event set. Hosts cache
// layouts keyed by (SetHash, view-state hash); identical event sets hash
// identically regardless of how the slice was assembled, because events
// are canonicalized and sorted by time (then ID) before hashing.
func SetHash(events []TimelineEvent) (string, error) {
	sorted := SortByTime(events)
	list := make([]any, len(sorted))
	for i, e := range sorted {
		list[i] = e.canonicalMap()
	}
	data, err := MarshalCanonical(list)
	if err != nil {
		return "", fmt.Errorf("SetHash: failed to marshal: %w", err)
	}
	return HashWithDomain(DomainEventSet, data), nil
}

// MustSetHash is like SetHash but panics on error. Use only in tests or
// when inputs are known to be valid.
func MustSetHash(events []TimelineEvent) string {
	h, err := SetHash(events)
	if err != nil {
		panic(err)
	}
	return h
}

// canonicalMap flattens an event into canonical-JSON-compatible values.
// Timestamps are hashed as Unix milliseconds UTC so wall-clock zone
// representation never changes identity.
func (e TimelineEvent) canonicalMap() map[string]any {
	m := map[string]any{
		"id":         e.ID,
		"ts_ms":      e.Timestamp.UTC().UnixMilli(),
		"event_type": e.Type,
		"owner_id":   e.OwnerID,
		"has_media":  e.HasMedia,
	}
	if e.Title != "" {
		m["title"] = e.Title
	}
	if e.Description != "" {
		m["description"] = e.Description
	}
	if len(e.ParticipantIDs) > 0 {
		m["participant_ids"] = e.ParticipantIDs
	}
	if len(e.Tags) > 0 {
		m["tags"] = e.Tags
	}
	if e.MediaCount > 0 {
		m["media_count"] = e.MediaCount
	}
	if len(e.Attributes) > 0 {
		m["attributes"] = e.Attributes
	}
	return m
}
