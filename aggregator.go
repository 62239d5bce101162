package cubik

import "sort"

// Aggregator accumulates, per face, the set of cubies reported as
// touching that face's collision volume. Reports are idempotent (set
// semantics) and carry no ordering guarantee. The aggregator never
// triggers anything itself: the dispatcher reads quorum state after a
// traversal and owns the decision to rotate.
type Aggregator struct {
	sets [faceCount]map[*Cubie]struct{}
}

// NewAggregator creates an aggregator with empty sets for all faces.
func NewAggregator() *Aggregator {
	a := &Aggregator{}
	for i := range a.sets {
		a.sets[i] = make(map[*Cubie]struct{})
	}
	return a
}

// Report adds a cubie to the face's set. Duplicate reports within one
// traversal are absorbed.
func (a *Aggregator) Report(f FaceID, c *Cubie) {
	a.sets[f][c] = struct{}{}
}

// Count returns the current set size for a face.
func (a *Aggregator) Count(f FaceID) int {
	return len(a.sets[f])
}

// QuorumReached reports whether the face's set has reached its
// required member count.
func (a *Aggregator) QuorumReached(f *Face) bool {
	return len(a.sets[f.ID]) >= f.Quorum
}

// Members returns the face's current set, sorted by tag so callers see
// a deterministic order.
func (a *Aggregator) Members(f FaceID) []*Cubie {
	members := make([]*Cubie, 0, len(a.sets[f]))
	for c := range a.sets[f] {
		members = append(members, c)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].Tag() < members[j].Tag()
	})
	return members
}

// Clear empties the face's set. Called exactly once per completed
// rotation, by the executor's completion step.
func (a *Aggregator) Clear(f FaceID) {
	a.sets[f] = make(map[*Cubie]struct{})
}
