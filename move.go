package cubik

import (
	"strings"
	"time"
)

// Direction is the rotational sense of a move. A lowercase command key
// selects Forward, the uppercase form Reverse; the two apply the same
// Euler delta with opposite sign.
type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Move is one completed quarter-turn with the face, direction, command
// key that selected it, and optional timestamp.
type Move struct {
	Face FaceID
	Dir  Direction
	Key  byte      // lowercase command key of the face
	Time time.Time // when the rotation completed (optional)
}

// Notation returns a short notation string: the face key uppercased,
// with a prime suffix for the reverse sense. Examples: T, T', C'.
func (m Move) Notation() string {
	s := string(upperByte(m.Key))
	if m.Dir == Reverse {
		s += "'"
	}
	return s
}

// KeyForm returns the keystroke that produces this move: the lowercase
// key for the forward sense, uppercase for reverse.
func (m Move) KeyForm() byte {
	if m.Dir == Reverse {
		return upperByte(m.Key)
	}
	return m.Key
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	inv := m
	inv.Dir = -m.Dir
	return inv
}

// WithTime returns a copy of the move with the given timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// FormatMoves formats a move sequence as space-separated notation.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
