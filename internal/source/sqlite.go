package source

import (
	"database/sql"
	_ "embed"
	"fmt"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/riverline/riverline/internal/event"
)

//go:embed schema.sql
var schemaSQL string

// Store reads timeline events from a SQLite database laid out like the
// host application's event tables.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path, applying
// pragmas and the event schema. Idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY on fixture seeding.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// InsertEvents writes events into the store. Used to seed fixture
// databases; the layout engine itself only ever reads.
func (s *Store) InsertEvents(events []event.TimelineEvent) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, e := range events {
		if e.ID == "" {
			return fmt.Errorf("event with empty id")
		}
		hasMedia := 0
		if e.HasMedia {
			hasMedia = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO events (id, ts_ms, event_type, title, description, owner_id, has_media, media_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Timestamp.UTC().UnixMilli(), e.Type, e.Title, e.Description, e.OwnerID, hasMedia, e.MediaCount,
		); err != nil {
			return fmt.Errorf("failed to insert event %s: %w", e.ID, err)
		}
		for i, pid := range e.ParticipantIDs {
			if _, err := tx.Exec(
				`INSERT INTO event_participants (event_id, participant_id, position) VALUES (?, ?, ?)`,
				e.ID, pid, i,
			); err != nil {
				return fmt.Errorf("failed to insert participant for %s: %w", e.ID, err)
			}
		}
		for _, tag := range e.Tags {
			if _, err := tx.Exec(
				`INSERT INTO event_tags (event_id, tag) VALUES (?, ?)`,
				e.ID, tag,
			); err != nil {
				return fmt.Errorf("failed to insert tag for %s: %w", e.ID, err)
			}
		}
	}

	return tx.Commit()
}

// LoadEvents reads every event, time-ordered. The ORDER BY includes the
// ID so repeated loads return identical slices.
func (s *Store) LoadEvents() ([]event.TimelineEvent, error) {
	rows, err := s.db.Query(
		`SELECT id, ts_ms, event_type, title, description, owner_id, has_media, media_count
		 FROM events ORDER BY ts_ms ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []event.TimelineEvent
	index := make(map[string]int)
	for rows.Next() {
		var e event.TimelineEvent
		var tsMs int64
		var hasMedia int
		if err := rows.Scan(&e.ID, &tsMs, &e.Type, &e.Title, &e.Description, &e.OwnerID, &hasMedia, &e.MediaCount); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Timestamp = time.UnixMilli(tsMs).UTC()
		e.HasMedia = hasMedia != 0
		index[e.ID] = len(events)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	if err := s.attachParticipants(events, index); err != nil {
		return nil, err
	}
	if err := s.attachTags(events, index); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) attachParticipants(events []event.TimelineEvent, index map[string]int) error {
	rows, err := s.db.Query(
		`SELECT event_id, participant_id FROM event_participants ORDER BY event_id ASC, position ASC`)
	if err != nil {
		return fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID, pid string
		if err := rows.Scan(&eventID, &pid); err != nil {
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		if i, ok := index[eventID]; ok {
			events[i].ParticipantIDs = append(events[i].ParticipantIDs, pid)
		}
	}
	return rows.Err()
}

func (s *Store) attachTags(events []event.TimelineEvent, index map[string]int) error {
	rows, err := s.db.Query(`SELECT event_id, tag FROM event_tags ORDER BY event_id ASC, tag ASC`)
	if err != nil {
		return fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID, tag string
		if err := rows.Scan(&eventID, &tag); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		if i, ok := index[eventID]; ok {
			events[i].Tags = append(events[i].Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Tags come back sorted per event already, but keep the guarantee
	// explicit for callers that hash the result.
	for i := range events {
		sort.Strings(events[i].Tags)
	}
	return nil
}
