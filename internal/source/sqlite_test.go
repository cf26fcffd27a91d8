package source

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverline/riverline/internal/event"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func fixtureEvents() []event.TimelineEvent {
	return []event.TimelineEvent{
		{
			ID:             "e2",
			Timestamp:      time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
			Type:           "note",
			Title:          "Checkup",
			OwnerID:        "p1",
			ParticipantIDs: []string{"p2", "p3"},
			Tags:           []string{"health"},
		},
		{
			ID:         "e1",
			Timestamp:  time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
			Type:       "photo",
			Title:      "First snow",
			OwnerID:    "p1",
			HasMedia:   true,
			MediaCount: 3,
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTempStore(t)
	require.NoError(t, s.InsertEvents(fixtureEvents()))

	got, err := s.LoadEvents()
	require.NoError(t, err)

	require.Len(t, got, 2)
	// Loaded time-ordered regardless of insert order.
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e2", got[1].ID)

	assert.Equal(t, "photo", got[0].Type)
	assert.True(t, got[0].HasMedia)
	assert.Equal(t, 3, got[0].MediaCount)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), got[0].Timestamp)

	assert.Equal(t, []string{"p2", "p3"}, got[1].ParticipantIDs, "participant order preserved")
	assert.Equal(t, []string{"health"}, got[1].Tags)
}

func TestStore_LoadDeterministic(t *testing.T) {
	s := openTempStore(t)
	require.NoError(t, s.InsertEvents(fixtureEvents()))

	first, err := s.LoadEvents()
	require.NoError(t, err)
	second, err := s.LoadEvents()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_EmptyDatabase(t *testing.T) {
	s := openTempStore(t)

	got, err := s.LoadEvents()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_RejectsEmptyID(t *testing.T) {
	s := openTempStore(t)

	err := s.InsertEvents([]event.TimelineEvent{{Timestamp: time.Now()}})
	assert.Error(t, err)
}

func TestStore_DuplicateIDFails(t *testing.T) {
	s := openTempStore(t)
	e := fixtureEvents()[0]

	require.NoError(t, s.InsertEvents([]event.TimelineEvent{e}))
	assert.Error(t, s.InsertEvents([]event.TimelineEvent{e}))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.InsertEvents(fixtureEvents()))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.LoadEvents()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
