package cubik

import "testing"

func testFace(id FaceID, quorum int) *Face {
	return &Face{ID: id, Quorum: quorum}
}

func TestReportIsIdempotent(t *testing.T) {
	a := NewAggregator()
	c := &Cubie{home: GridPos{X: 1, Y: 1, Z: 1}}

	a.Report(FaceTop, c)
	a.Report(FaceTop, c)
	a.Report(FaceTop, c)

	if got := a.Count(FaceTop); got != 1 {
		t.Errorf("count after duplicate reports = %d, want 1", got)
	}
}

func TestQuorumThreshold(t *testing.T) {
	a := NewAggregator()
	f := testFace(FaceCenterVertical, 8)

	for i := 0; i < 7; i++ {
		a.Report(f.ID, &Cubie{home: GridPos{X: i}})
		if a.QuorumReached(f) {
			t.Fatalf("quorum reached at %d members, want 8", i+1)
		}
	}
	a.Report(f.ID, &Cubie{home: GridPos{X: 7}})
	if !a.QuorumReached(f) {
		t.Error("quorum should be reached at 8 members")
	}
}

func TestSetsAreIndependentPerFace(t *testing.T) {
	a := NewAggregator()
	a.Report(FaceTop, &Cubie{})
	if a.Count(FaceBottom) != 0 {
		t.Error("report for one face must not touch another face's set")
	}
}

func TestClearEmptiesOnlyThatFace(t *testing.T) {
	a := NewAggregator()
	a.Report(FaceTop, &Cubie{})
	a.Report(FaceBottom, &Cubie{})

	a.Clear(FaceTop)
	if a.Count(FaceTop) != 0 {
		t.Error("cleared face should be empty")
	}
	if a.Count(FaceBottom) != 1 {
		t.Error("clear must not touch other faces")
	}
}

func TestMembersSortedByTag(t *testing.T) {
	root := newTestEngine(t) // engine gives us real tagged cubies
	a := NewAggregator()
	for _, c := range root.Cubies()[:5] {
		a.Report(FaceTop, c)
	}
	members := a.Members(FaceTop)
	for i := 1; i < len(members); i++ {
		if members[i-1].Tag() > members[i].Tag() {
			t.Fatalf("members not sorted: %s before %s", members[i-1].Tag(), members[i].Tag())
		}
	}
}
