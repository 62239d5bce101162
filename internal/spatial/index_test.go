package spatial

import (
	"testing"

	"github.com/jaroslaw-wieczorek/cubik/internal/scene"
)

func slabZ(lo, hi float64) Volume {
	return Volume{
		Name: "slab",
		Box: Box{
			Min: scene.Vec3{X: -1.5, Y: -1.5, Z: lo},
			Max: scene.Vec3{X: 1.5, Y: 1.5, Z: hi},
		},
	}
}

func gridPopulation(root *scene.Node) []*scene.Node {
	var nodes []*scene.Node
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				n := scene.NewNode("cubie")
				n.AttachTo(root)
				n.SetPos(scene.Vec3{X: float64(x), Y: float64(y), Z: float64(z)})
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}

func TestTraverseTopSlabHitsNine(t *testing.T) {
	root := scene.NewNode("root")
	pop := gridPopulation(root)
	ix := NewIndex(pop)

	var hits []*scene.Node
	ix.OnHit(func(v Volume, n *scene.Node) { hits = append(hits, n) })

	if got := ix.Traverse(slabZ(0.5, 1.5)); got != 9 {
		t.Errorf("top slab hits = %d, want 9", got)
	}
	if len(hits) != 9 {
		t.Errorf("hook fired %d times, want 9", len(hits))
	}
}

func TestTraverseCenterSlabHitsEight(t *testing.T) {
	root := scene.NewNode("root")
	ix := NewIndex(gridPopulation(root))

	if got := ix.Traverse(slabZ(-0.5, 0.5)); got != 8 {
		t.Errorf("center slab hits = %d, want 8 (no core cubie)", got)
	}
}

func TestCacheIsStaleUntilInvalidated(t *testing.T) {
	root := scene.NewNode("root")
	pop := gridPopulation(root)
	ix := NewIndex(pop)

	top := slabZ(0.5, 1.5)
	if got := ix.Traverse(top); got != 9 {
		t.Fatalf("initial hits = %d, want 9", got)
	}

	// Move one top cubie down. Without invalidation the cached
	// position still places it in the top slab.
	for _, n := range pop {
		if n.Pos().Z == 1 {
			n.SetPos(scene.Vec3{X: n.Pos().X, Y: n.Pos().Y, Z: -1})
			break
		}
	}
	if got := ix.Traverse(top); got != 9 {
		t.Errorf("stale hits = %d, want 9 before invalidation", got)
	}

	ix.Invalidate()
	if got := ix.Traverse(top); got != 8 {
		t.Errorf("refreshed hits = %d, want 8 after invalidation", got)
	}
}

func TestBoxBoundaryExclusiveOnMax(t *testing.T) {
	b := Box{Min: scene.Vec3{Z: -0.5}, Max: scene.Vec3{X: 1, Y: 1, Z: 0.5}}
	if b.Contains(scene.Vec3{X: 1, Y: 0.5, Z: 0}) {
		t.Error("max boundary should be exclusive")
	}
	if !b.Contains(scene.Vec3{X: 0, Y: 0, Z: -0.5}) {
		t.Error("min boundary should be inclusive")
	}
}
