// Package spatial implements the collision subsystem the engine
// consumes: axis-aligned box volumes traversed against the cubie
// population. Overlaps are routed back through a registered hook.
//
// World positions are cached between traversals and refreshed only
// after an explicit Invalidate call, so callers own the decision of
// when the index reflects current geometry.
package spatial

import "github.com/jaroslaw-wieczorek/cubik/internal/scene"

// Box is an axis-aligned box in world space.
type Box struct {
	Min, Max scene.Vec3
}

// Contains reports whether p lies inside the box. The boundary is
// exclusive on the max side so adjacent layer slabs never share a hit.
func (b Box) Contains(p scene.Vec3) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// Volume is a named collision volume.
type Volume struct {
	Name string
	Box  Box
}

// Hook receives one call per cubie overlapping the traversed volume.
type Hook func(v Volume, node *scene.Node)

// Index holds the cubie population and a position cache.
type Index struct {
	population []*scene.Node
	cache      map[*scene.Node]scene.Vec3
	valid      bool
	hook       Hook
}

// NewIndex creates an index over the given population. The cache
// starts invalid and fills on the first traversal.
func NewIndex(population []*scene.Node) *Index {
	return &Index{
		population: population,
		cache:      make(map[*scene.Node]scene.Vec3, len(population)),
	}
}

// OnHit registers the hook that receives overlap reports.
func (ix *Index) OnHit(hook Hook) {
	ix.hook = hook
}

// Invalidate discards cached positions. The next traversal recomputes
// them from the scene hierarchy.
func (ix *Index) Invalidate() {
	ix.valid = false
}

func (ix *Index) refresh() {
	for _, n := range ix.population {
		ix.cache[n] = n.WorldPos()
	}
	ix.valid = true
}

// Traverse tests every cubie against the volume and reports each
// overlap through the registered hook. Report order follows the
// population order, which is fixed at construction.
func (ix *Index) Traverse(v Volume) int {
	if !ix.valid {
		ix.refresh()
	}
	hits := 0
	for _, n := range ix.population {
		if v.Box.Contains(ix.cache[n]) {
			hits++
			if ix.hook != nil {
				ix.hook(v, n)
			}
		}
	}
	return hits
}
