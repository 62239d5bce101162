package cubik

import (
	"time"

	"github.com/jaroslaw-wieczorek/cubik/internal/scene"
	"github.com/jaroslaw-wieczorek/cubik/internal/sched"
)

// Executor applies one quarter-turn to a collected layer: it reparents
// the cubies under the face pivot preserving their world transforms,
// rotates the pivot (animated or instantaneous), then reparents them
// back under the cube root and snaps them onto the lattice. Nothing
// else runs between start and completion for a given rotation; the
// dispatcher's gate plus the completion callback enforce the strict
// total order over rotations.
type Executor struct {
	root     *scene.Node
	clock    *sched.Scheduler
	animate  bool
	duration time.Duration
	onStart  func(face *Face, dir Direction)
	onDone   func(face *Face, dir Direction)
}

func newExecutor(root *scene.Node, clock *sched.Scheduler, animate bool, duration time.Duration) *Executor {
	return &Executor{
		root:     root,
		clock:    clock,
		animate:  animate,
		duration: duration,
	}
}

// Animate reports whether rotations are animated.
func (x *Executor) Animate() bool { return x.animate }

// SetAnimate toggles animation. The shuffle scheduler disables it for
// the duration of a sequence.
func (x *Executor) SetAnimate(on bool) { x.animate = on }

// Execute rotates the face's layer by its Euler delta times dir.
// members is the quorum set collected by the aggregator.
func (x *Executor) Execute(face *Face, dir Direction, members []*Cubie) {
	if x.onStart != nil {
		x.onStart(face, dir)
	}

	pivot := face.pivot
	// Guard against residual transform from an earlier rotation.
	pivot.ClearTransform()

	for _, c := range members {
		c.node.ReparentPreserveWorld(pivot)
	}

	hpr := face.Rotation.Scale(float64(dir))
	finish := func() {
		pivot.SetRot(scene.SnapRotation(scene.FromHpr(hpr)))
		for _, c := range members {
			c.node.ReparentPreserveWorld(x.root)
			c.node.SnapToLattice()
		}
		pivot.ClearTransform()
		if x.onDone != nil {
			x.onDone(face, dir)
		}
	}

	if x.animate {
		x.clock.Schedule(x.duration, func(progress float64) {
			pivot.SetRot(scene.FromHpr(hpr.Scale(progress)))
		}, finish)
	} else {
		finish()
	}
}
