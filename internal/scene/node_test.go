package scene

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestWorldPosComposesParentChain(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")

	mid.AttachTo(root)
	leaf.AttachTo(mid)

	mid.SetPos(Vec3{X: 1})
	leaf.SetPos(Vec3{Y: 2})

	if got := leaf.WorldPos(); !vecNear(got, Vec3{X: 1, Y: 2}) {
		t.Errorf("world pos = %v, want (1,2,0)", got)
	}
}

func TestRotatedParentMovesChild(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	child.AttachTo(root)
	child.SetPos(Vec3{X: 1, Y: 1, Z: 1})

	root.SetRot(RotZ(-90))

	// RotZ(-90): (x, y) -> (y, -x)
	if got := child.WorldPos(); !vecNear(got, Vec3{X: 1, Y: -1, Z: 1}) {
		t.Errorf("world pos = %v, want (1,-1,1)", got)
	}
}

func TestReparentPreservesWorldTransform(t *testing.T) {
	root := NewNode("root")
	pivot := NewNode("pivot")
	cubie := NewNode("cubie")
	pivot.AttachTo(root)
	cubie.AttachTo(root)

	pivot.SetRot(RotZ(45))
	pivot.SetPos(Vec3{X: 3})
	cubie.SetPos(Vec3{X: 1, Y: 1, Z: 1})

	before := cubie.WorldPos()
	cubie.ReparentPreserveWorld(pivot)
	if got := cubie.WorldPos(); !vecNear(got, before) {
		t.Errorf("world pos changed across reparent: %v -> %v", before, got)
	}
	if cubie.Parent() != pivot {
		t.Error("cubie should be parented to pivot")
	}

	cubie.ReparentPreserveWorld(root)
	if got := cubie.WorldPos(); !vecNear(got, before) {
		t.Errorf("world pos changed across reparent back: %v -> %v", before, got)
	}
}

func TestPivotRotationRoundTrip(t *testing.T) {
	// Reparent under pivot, turn the pivot a quarter turn, reparent
	// back: the cubie must land on the rotated lattice position.
	root := NewNode("root")
	pivot := NewNode("pivot")
	cubie := NewNode("cubie")
	pivot.AttachTo(root)
	cubie.AttachTo(root)
	cubie.SetPos(Vec3{X: 1, Y: 1, Z: 1})

	cubie.ReparentPreserveWorld(pivot)
	pivot.SetRot(FromHpr(Vec3{X: -90}))
	cubie.ReparentPreserveWorld(root)
	cubie.SnapToLattice()

	if got := cubie.Pos(); !vecNear(got, Vec3{X: 1, Y: -1, Z: 1}) {
		t.Errorf("pos after quarter turn = %v, want (1,-1,1)", got)
	}
}

func TestSnapRotationRemovesDrift(t *testing.T) {
	m := RotZ(90).Mul(RotZ(90)).Mul(RotZ(90)).Mul(RotZ(90))
	snapped := SnapRotation(m)
	if snapped != Identity() {
		t.Errorf("four quarter turns should snap to identity, got %v", snapped)
	}
}

func TestDetachOnReattach(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	c.AttachTo(a)
	c.AttachTo(b)

	if len(a.Children()) != 0 {
		t.Error("node should be removed from old parent's children")
	}
	if len(b.Children()) != 1 || b.Children()[0] != c {
		t.Error("node should be attached to new parent")
	}
}
