package cubik

import "testing"

func TestMoveNotation(t *testing.T) {
	cases := []struct {
		move Move
		want string
	}{
		{Move{Face: FaceTop, Dir: Forward, Key: 't'}, "T"},
		{Move{Face: FaceTop, Dir: Reverse, Key: 't'}, "T'"},
		{Move{Face: FaceCenterDouble, Dir: Reverse, Key: 'c'}, "C'"},
	}
	for _, tc := range cases {
		if got := tc.move.Notation(); got != tc.want {
			t.Errorf("notation = %q, want %q", got, tc.want)
		}
	}
}

func TestMoveKeyForm(t *testing.T) {
	m := Move{Face: FaceFront, Dir: Forward, Key: 'f'}
	if m.KeyForm() != 'f' {
		t.Errorf("forward key form = %q, want f", m.KeyForm())
	}
	if m.Inverse().KeyForm() != 'F' {
		t.Errorf("reverse key form = %q, want F", m.Inverse().KeyForm())
	}
}

func TestInverseRoundTrips(t *testing.T) {
	m := Move{Face: FaceLeft, Dir: Reverse, Key: 'l'}
	if got := m.Inverse().Inverse(); got.Dir != m.Dir || got.Face != m.Face {
		t.Errorf("double inverse = %v, want %v", got, m)
	}
}

func TestFormatMoves(t *testing.T) {
	moves := []Move{
		{Face: FaceTop, Dir: Forward, Key: 't'},
		{Face: FaceBottom, Dir: Reverse, Key: 'd'},
	}
	if got := FormatMoves(moves); got != "T D'" {
		t.Errorf("FormatMoves = %q, want \"T D'\"", got)
	}
	if FormatMoves(nil) != "" {
		t.Error("empty sequence should format to empty string")
	}
}
