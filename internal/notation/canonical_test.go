package notation

import (
	"testing"

	"github.com/jaroslaw-wieczorek/cubik"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		face cubik.FaceID
		dir  cubik.Direction
		want string
	}{
		{cubik.FaceTop, cubik.Forward, "U"},
		{cubik.FaceTop, cubik.Reverse, "U'"},
		{cubik.FaceBottom, cubik.Forward, "D'"},
		{cubik.FaceBottom, cubik.Reverse, "D"},
		{cubik.FaceLeft, cubik.Forward, "L"},
		{cubik.FaceRight, cubik.Reverse, "R'"},
		{cubik.FaceFront, cubik.Forward, "F"},
		{cubik.FaceBack, cubik.Forward, "B"},
		{cubik.FaceCenterVertical, cubik.Forward, "E'"},
		{cubik.FaceCenterHorizontal, cubik.Forward, "M"},
		{cubik.FaceCenterDouble, cubik.Reverse, "S'"},
	}

	for _, tt := range tests {
		got := Canonical(cubik.Move{Face: tt.face, Dir: tt.dir})
		if got != tt.want {
			t.Errorf("Canonical(%s, %s) = %q, want %q", tt.face, tt.dir, got, tt.want)
		}
	}
}

func TestParseCanonicalRoundTrip(t *testing.T) {
	for id := range [9]struct{}{} {
		for _, dir := range []cubik.Direction{cubik.Forward, cubik.Reverse} {
			m := cubik.Move{Face: cubik.FaceID(id), Dir: dir}
			s := Canonical(m)
			face, gotDir, ok := ParseCanonical(s)
			if !ok {
				t.Fatalf("ParseCanonical(%q) failed", s)
			}
			if face != m.Face || gotDir != m.Dir {
				t.Errorf("ParseCanonical(%q) = %s %s, want %s %s", s, face, gotDir, m.Face, m.Dir)
			}
		}
	}
}

func TestParseCanonicalRejects(t *testing.T) {
	for _, s := range []string{"", "X", "U2", "UU", "U''"} {
		if _, _, ok := ParseCanonical(s); ok {
			t.Errorf("ParseCanonical(%q) should fail", s)
		}
	}
}

func TestParseSequence(t *testing.T) {
	moves, ok := ParseSequence("U D' m e")
	if !ok {
		t.Fatal("ParseSequence failed")
	}
	if len(moves) != 4 {
		t.Fatalf("got %d moves, want 4", len(moves))
	}
	if got := CanonicalSequence(moves); got != "U D' M E" {
		t.Errorf("round trip = %q", got)
	}

	if _, ok := ParseSequence("U X D"); ok {
		t.Error("invalid token should abort parse")
	}
}
