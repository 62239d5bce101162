package cubik

import "github.com/jaroslaw-wieczorek/cubik/internal/spatial"

// MoveState is the dispatcher's state. Rotating is the only state in
// which input is rejected; Collecting exists only for the duration of
// one Attempt call while a traversal fills the aggregator.
type MoveState int

const (
	StateIdle MoveState = iota
	StateCollecting
	StateRotating
)

func (s MoveState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateRotating:
		return "rotating"
	default:
		return "?"
	}
}

// Ack is the acknowledgment Attempt returns. Attempt never fails;
// every outcome, including a dropped or unrecognized key, is a plain
// acknowledgment.
type Ack int

const (
	// AckDropped: input arrived while a rotation was in flight or a
	// shuffle was running. The key is lost, not queued.
	AckDropped Ack = iota
	// AckIgnored: the key is bound to nothing. No state change.
	AckIgnored
	// AckCamera: the key selected a camera preset.
	AckCamera
	// AckShuffle: the key started a shuffle sequence.
	AckShuffle
	// AckPending: a face traversal ran but quorum was not reached; no
	// rotation was triggered and input stays armed.
	AckPending
	// AckRotating: quorum was met and a rotation started.
	AckRotating
)

func (a Ack) String() string {
	switch a {
	case AckDropped:
		return "dropped"
	case AckIgnored:
		return "ignored"
	case AckCamera:
		return "camera"
	case AckShuffle:
		return "shuffle"
	case AckPending:
		return "pending"
	case AckRotating:
		return "rotating"
	default:
		return "?"
	}
}

type bindingKind int

const (
	bindNone bindingKind = iota
	bindFace
	bindCamera
	bindShuffle
)

type binding struct {
	kind bindingKind
	face *Face
}

// Dispatcher maps keystrokes to faces, camera presets or the shuffle
// trigger, and gates re-entrancy: at most one rotation is ever in
// flight, and keys arriving during one are dropped. Key resolution
// goes through a typed binding table built once at construction.
type Dispatcher struct {
	state    MoveState
	bindings map[byte]binding

	index *spatial.Index
	agg   *Aggregator
	exec  *Executor
	cam   *Camera
	shuf  *Shuffler

	onCamera func(CameraView)
}

func newDispatcher(reg *Registry, index *spatial.Index, agg *Aggregator, exec *Executor, cam *Camera) *Dispatcher {
	d := &Dispatcher{
		state:    StateIdle,
		bindings: make(map[byte]binding),
		index:    index,
		agg:      agg,
		exec:     exec,
		cam:      cam,
	}
	for _, f := range reg.Faces() {
		b := binding{kind: bindFace, face: f}
		d.bindings[f.Key] = b
		d.bindings[upperByte(f.Key)] = b
	}
	for k := byte('1'); k <= '7'; k++ {
		d.bindings[k] = binding{kind: bindCamera}
	}
	d.bindings[' '] = binding{kind: bindShuffle}
	return d
}

// State returns the dispatcher's current state.
func (d *Dispatcher) State() MoveState { return d.state }

// attempt processes one keystroke. synthetic marks calls from the
// shuffle scheduler, which is the only caller allowed through while a
// shuffle is running.
func (d *Dispatcher) attempt(key byte, synthetic bool) Ack {
	if d.state == StateRotating {
		return AckDropped
	}
	if d.shuf.Running() && !synthetic {
		return AckDropped
	}

	b := d.bindings[key]
	switch b.kind {
	case bindCamera:
		v := d.cam.Select(key)
		if d.onCamera != nil {
			d.onCamera(v)
		}
		return AckCamera

	case bindShuffle:
		if d.shuf.Start() {
			return AckShuffle
		}
		return AckDropped

	case bindFace:
		dir := Forward
		if key >= 'A' && key <= 'Z' {
			dir = Reverse
		}

		d.state = StateCollecting
		// Drop any members left over from an earlier traversal; the set
		// must describe the layer as it stands now. The spatial cache
		// may likewise hold positions from before the previous
		// rotation, so recompute it too.
		d.agg.Clear(b.face.ID)
		d.index.Invalidate()
		d.index.Traverse(b.face.volume)

		if d.agg.QuorumReached(b.face) {
			d.state = StateRotating
			d.exec.Execute(b.face, dir, d.agg.Members(b.face.ID))
			return AckRotating
		}
		d.state = StateIdle
		return AckPending

	default:
		return AckIgnored
	}
}

// rotationFinished is called by the executor's completion step. It is
// the only transition out of Rotating.
func (d *Dispatcher) rotationFinished() {
	d.state = StateIdle
}
