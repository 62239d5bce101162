package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a play session in the database.
type Session struct {
	SessionID   string
	StartedAt   time.Time
	EndedAt     *time.Time
	DurationMs  *int64
	ShuffleText *string
	Notes       *string
	AppVersion  *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(notes, shuffle, appVersion string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var notesPtr, shufflePtr, appVersionPtr *string
	if notes != "" {
		notesPtr = &notes
	}
	if shuffle != "" {
		shufflePtr = &shuffle
	}
	if appVersion != "" {
		appVersionPtr = &appVersion
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, notes, shuffle_text, app_version)
		VALUES (?, ?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), notesPtr, shufflePtr, appVersionPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete and stores its duration.
func (r *SessionRepository) End(sessionID string) error {
	endedAt := time.Now().UTC()

	var startedStr string
	err := r.db.QueryRow(`SELECT started_at FROM sessions WHERE session_id = ?`, sessionID).Scan(&startedStr)
	if err != nil {
		return fmt.Errorf("failed to find session: %w", err)
	}
	started, err := time.Parse(time.RFC3339, startedStr)
	if err != nil {
		return fmt.Errorf("failed to parse session start: %w", err)
	}

	durationMs := endedAt.Sub(started).Milliseconds()
	_, err = r.db.Exec(`
		UPDATE sessions SET ended_at = ?, duration_ms = ? WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

// SetShuffle stores the shuffle sequence text for a session.
func (r *SessionRepository) SetShuffle(sessionID, shuffle string) error {
	_, err := r.db.Exec(`UPDATE sessions SET shuffle_text = ? WHERE session_id = ?`, shuffle, sessionID)
	if err != nil {
		return fmt.Errorf("failed to set shuffle text: %w", err)
	}
	return nil
}

// Get retrieves one session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, duration_ms, shuffle_text, notes, app_version
		FROM sessions WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found: %s", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List retrieves the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]*Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, duration_ms, shuffle_text, notes, app_version
		FROM sessions ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedStr string
	var endedStr *string
	if err := row.Scan(&s.SessionID, &startedStr, &endedStr, &s.DurationMs, &s.ShuffleText, &s.Notes, &s.AppVersion); err != nil {
		return nil, err
	}

	started, err := time.Parse(time.RFC3339, startedStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	s.StartedAt = started

	if endedStr != nil {
		ended, err := time.Parse(time.RFC3339, *endedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ended_at: %w", err)
		}
		s.EndedAt = &ended
	}
	return &s, nil
}
