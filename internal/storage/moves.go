package storage

import (
	"database/sql"
	"fmt"

	"github.com/jaroslaw-wieczorek/cubik"
)

// MoveRecord represents a recorded move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Face      string
	Direction int
	Notation  string
	Source    string // "manual" or "shuffle"
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create stores one move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, move cubik.Move, source string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, face, direction, notation, source)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, move.Time.UnixMilli(), move.Face.String(), int(move.Dir), move.Notation(), source)

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch stores multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, moves []cubik.Move, startIndex int, source string) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, face, direction, notation, source)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, move.Time.UnixMilli(), move.Face.String(), int(move.Dir), move.Notation(), source)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, face, direction, notation, source
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Face, &m.Direction, &m.Notation, &m.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// CountBySession returns the number of moves recorded for a session.
func (r *MoveRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM moves WHERE session_id = ?`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}
