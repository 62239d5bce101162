package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/jaroslaw-wieczorek/cubik"
	"github.com/jaroslaw-wieczorek/cubik/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session records the moves of one play session to the database.
type Session struct {
	db        *storage.DB
	stateFile *StateFile

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository

	onMove func(cubik.Move)
}

// NewSession creates a new session manager.
func NewSession(db *storage.DB, stateFile *StateFile) *Session {
	return &Session{
		db:          db,
		stateFile:   stateFile,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// SetMoveCallback sets the callback for recorded moves.
func (s *Session) SetMoveCallback(cb func(cubik.Move)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// ElapsedMs returns the elapsed time since session start in milliseconds.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// MoveCount returns the current move count.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// Start starts a new recording session.
func (s *Session) Start(notes, appVersion string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", fmt.Errorf("session already in progress")
	}

	sessionID, err := s.sessionRepo.Create(notes, "", appVersion)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = sessionID
	s.startTime = time.Now()
	s.moveIndex = 0
	s.state = StateRecording

	if s.stateFile != nil {
		_ = s.stateFile.SetActiveSession(sessionID)
	}

	return sessionID, nil
}

// End ends the current recording session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	if err := s.sessionRepo.End(s.sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded

	if s.stateFile != nil {
		_ = s.stateFile.ClearActiveSession()
	}

	return nil
}

// RecordMove records a single manual move.
func (s *Session) RecordMove(move cubik.Move) error {
	return s.record(move, "manual")
}

// RecordShuffle records a full shuffle sequence and stores its notation on
// the session row.
func (s *Session) RecordShuffle(moves []cubik.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return nil
	}

	if err := s.moveRepo.CreateBatch(s.sessionID, moves, s.moveIndex, "shuffle"); err != nil {
		return fmt.Errorf("failed to store shuffle moves: %w", err)
	}
	s.moveIndex += len(moves)

	if err := s.sessionRepo.SetShuffle(s.sessionID, cubik.FormatMoves(moves)); err != nil {
		return fmt.Errorf("failed to store shuffle text: %w", err)
	}

	return nil
}

func (s *Session) record(move cubik.Move, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return nil
	}

	if _, err := s.moveRepo.Create(s.sessionID, s.moveIndex, move, source); err != nil {
		return fmt.Errorf("failed to store move: %w", err)
	}
	s.moveIndex++

	if s.onMove != nil {
		go s.onMove(move)
	}

	return nil
}

// Resume attempts to resume an interrupted session.
func (s *Session) Resume(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if sess.EndedAt != nil {
		return fmt.Errorf("session already ended")
	}

	count, err := s.moveRepo.CountBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to count moves: %w", err)
	}

	s.sessionID = sessionID
	s.startTime = sess.StartedAt
	s.moveIndex = count
	s.state = StateRecording

	return nil
}
