// Package notation converts between the engine's key-based move
// notation and standard Singmaster notation.
package notation

import (
	"strings"

	"github.com/jaroslaw-wieczorek/cubik"
)

// canonicalSpec maps a face to its Singmaster letter. invert marks
// faces whose forward sense is the mirror of the canonical clockwise
// turn: D and E are defined viewed from below, while the engine turns
// every horizontal layer in the top face's sense.
type canonicalSpec struct {
	letter byte
	invert bool
}

var canonical = map[cubik.FaceID]canonicalSpec{
	cubik.FaceTop:              {'U', false},
	cubik.FaceBottom:           {'D', true},
	cubik.FaceLeft:             {'L', false},
	cubik.FaceRight:            {'R', false},
	cubik.FaceFront:            {'F', false},
	cubik.FaceBack:             {'B', false},
	cubik.FaceCenterVertical:   {'E', true},
	cubik.FaceCenterHorizontal: {'M', false},
	cubik.FaceCenterDouble:     {'S', false},
}

var byLetter = func() map[byte]cubik.FaceID {
	m := make(map[byte]cubik.FaceID, len(canonical))
	for id, spec := range canonical {
		m[spec.letter] = id
	}
	return m
}()

// Canonical returns the move in Singmaster notation, e.g. U, D', M.
func Canonical(m cubik.Move) string {
	spec := canonical[m.Face]
	prime := (m.Dir == cubik.Reverse) != spec.invert
	s := string(spec.letter)
	if prime {
		s += "'"
	}
	return s
}

// CanonicalSequence formats moves as space-separated Singmaster
// notation.
func CanonicalSequence(moves []cubik.Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Canonical(m)
	}
	return strings.Join(parts, " ")
}

// ParseCanonical parses one Singmaster token into a face and
// direction. A "2" suffix is not supported; callers expand double
// turns themselves.
func ParseCanonical(s string) (cubik.FaceID, cubik.Direction, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return 0, 0, false
	}

	id, ok := byLetter[upper(s[0])]
	if !ok {
		return 0, 0, false
	}

	prime := false
	if len(s) == 2 {
		if s[1] != '\'' && s[1] != '`' {
			return 0, 0, false
		}
		prime = true
	}

	dir := cubik.Forward
	if prime != canonical[id].invert {
		dir = cubik.Reverse
	}
	return id, dir, true
}

// ParseSequence parses a space-separated Singmaster sequence. Invalid
// tokens abort the parse rather than being skipped.
func ParseSequence(s string) ([]cubik.Move, bool) {
	parts := strings.Fields(s)
	moves := make([]cubik.Move, 0, len(parts))
	for _, part := range parts {
		id, dir, ok := ParseCanonical(part)
		if !ok {
			return nil, false
		}
		moves = append(moves, cubik.Move{Face: id, Dir: dir})
	}
	return moves, true
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
