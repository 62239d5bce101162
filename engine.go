package cubik

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jaroslaw-wieczorek/cubik/internal/scene"
	"github.com/jaroslaw-wieczorek/cubik/internal/sched"
	"github.com/jaroslaw-wieczorek/cubik/internal/spatial"
)

// Engine owns the cube: the 26-cubie population, the face registry,
// the collision aggregator, the move dispatcher, the rotation executor
// and the shuffle scheduler, all driven by one cooperative clock.
//
// The engine is single-threaded. Feed it keystrokes with Attempt and
// time with Advance from one goroutine (a TUI frame loop, a test).
type Engine struct {
	root   *scene.Node
	cubies []*Cubie
	byNode map[*scene.Node]*Cubie

	reg   *Registry
	clock *sched.Scheduler
	index *spatial.Index
	agg   *Aggregator
	exec  *Executor
	disp  *Dispatcher
	shuf  *Shuffler
	cam   *Camera

	moveHistory     bool
	history         []Move
	onMove          func(Move)
	onRotationStart func(face FaceID, dir Direction)
	onCamera        func(CameraView)
	onShuffleDone   func(moves int)
}

// New creates an engine with a cube in the reference orientation.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	root := scene.NewNode("cube")
	cubies := buildCubies(root)

	reg, err := newRegistry(root, cfg.keys)
	if err != nil {
		return nil, err
	}

	byNode := make(map[*scene.Node]*Cubie, len(cubies))
	nodes := make([]*scene.Node, len(cubies))
	for i, c := range cubies {
		nodes[i] = c.node
		byNode[c.node] = c
	}

	e := &Engine{
		root:        root,
		cubies:      cubies,
		byNode:      byNode,
		reg:         reg,
		clock:       sched.New(),
		index:       spatial.NewIndex(nodes),
		agg:         NewAggregator(),
		cam:         newCamera(),
		moveHistory: cfg.moveHistory,
	}

	e.exec = newExecutor(root, e.clock, cfg.animate, cfg.animationDuration)
	e.exec.onStart = func(face *Face, dir Direction) {
		if e.onRotationStart != nil {
			e.onRotationStart(face.ID, dir)
		}
	}
	e.exec.onDone = e.rotationDone

	e.disp = newDispatcher(reg, e.index, e.agg, e.exec, e.cam)
	e.disp.onCamera = func(v CameraView) {
		if e.onCamera != nil {
			e.onCamera(v)
		}
	}
	e.shuf = newShuffler(reg, e.clock, e.exec, cfg)
	e.shuf.dispatch = func(key byte) Ack { return e.disp.attempt(key, true) }
	e.shuf.onDone = e.shuffleFinished
	e.disp.shuf = e.shuf

	// Overlap reports from the collision subsystem land in the
	// aggregator; the dispatcher decides what happens with quorum.
	e.index.OnHit(func(v spatial.Volume, n *scene.Node) {
		if face, ok := reg.byVolume[v.Name]; ok {
			e.agg.Report(face.ID, e.byNode[n])
		}
	})

	return e, nil
}

func validateConfig(cfg *config) error {
	if cfg.animationDuration < 0 {
		return fmt.Errorf("%w: negative animation duration", ErrBadConfig)
	}
	if cfg.shuffleMin < 1 || cfg.shuffleMax < cfg.shuffleMin {
		return fmt.Errorf("%w: shuffle range [%d, %d]", ErrBadConfig, cfg.shuffleMin, cfg.shuffleMax)
	}
	if cfg.shuffleMoveDelay < 0 || cfg.shuffleInitialDelay < 0 {
		return fmt.Errorf("%w: negative shuffle delay", ErrBadConfig)
	}
	return nil
}

// Attempt feeds one keystroke to the move dispatcher: a face key
// (either case) rotates a layer, digits select camera presets, space
// starts a shuffle, anything else is ignored. Attempt never fails; the
// returned Ack says what became of the key.
func (e *Engine) Attempt(key byte) Ack {
	return e.disp.attempt(key, false)
}

// Advance moves the engine's clock forward, progressing any running
// animation and shuffle playback. Call it from a frame loop with the
// elapsed time since the previous call.
func (e *Engine) Advance(dt time.Duration) {
	e.clock.Advance(dt)
}

// Idle reports whether no animation or shuffle work is pending.
func (e *Engine) Idle() bool {
	return e.clock.Idle() && e.disp.state == StateIdle && !e.shuf.Running()
}

// State returns the dispatcher's current move state.
func (e *Engine) State() MoveState { return e.disp.State() }

// Shuffling reports whether a shuffle sequence is running.
func (e *Engine) Shuffling() bool { return e.shuf.Running() }

// StartShuffle starts a shuffle programmatically, subject to the same
// gating as the shuffle key. It returns false if refused.
func (e *Engine) StartShuffle() bool {
	return e.Attempt(' ') == AckShuffle
}

// Faces returns the face registry entries in fixed order.
func (e *Engine) Faces() []*Face { return e.reg.Faces() }

// Cubies returns the cubie population.
func (e *Engine) Cubies() []*Cubie { return e.cubies }

// Layout maps each occupied lattice position to the tag of the cubie
// sitting there.
func (e *Engine) Layout() map[GridPos]string {
	layout := make(map[GridPos]string, len(e.cubies))
	for _, c := range e.cubies {
		layout[c.Grid()] = c.Tag()
	}
	return layout
}

// CubieAt returns the tag of the cubie at a lattice position.
func (e *Engine) CubieAt(p GridPos) (string, bool) {
	for _, c := range e.cubies {
		if c.Grid() == p {
			return c.Tag(), true
		}
	}
	return "", false
}

// Camera returns the current camera view.
func (e *Engine) Camera() CameraView { return e.cam.View() }

// Moves returns a copy of the completed move history.
func (e *Engine) Moves() []Move {
	out := make([]Move, len(e.history))
	copy(out, e.history)
	return out
}

// ClearHistory clears the move history.
func (e *Engine) ClearHistory() {
	e.history = nil
}

// OnMove sets a callback that fires when a rotation completes.
func (e *Engine) OnMove(cb func(Move)) {
	e.onMove = cb
}

// OnRotationStart sets a callback that fires when a rotation begins,
// before any animation progresses.
func (e *Engine) OnRotationStart(cb func(face FaceID, dir Direction)) {
	e.onRotationStart = cb
}

// OnCamera sets a callback that fires when a camera preset is applied.
func (e *Engine) OnCamera(cb func(CameraView)) {
	e.onCamera = cb
}

// OnShuffleDone sets a callback that fires when a shuffle sequence
// finishes, with the number of moves played.
func (e *Engine) OnShuffleDone(cb func(moves int)) {
	e.onShuffleDone = cb
}

// rotationDone is the executor's completion step: clear the face's
// collision set, release the gate, record the move.
func (e *Engine) rotationDone(face *Face, dir Direction) {
	e.agg.Clear(face.ID)
	e.disp.rotationFinished()

	move := Move{Face: face.ID, Dir: dir, Key: face.Key, Time: time.Now()}
	if e.moveHistory {
		e.history = append(e.history, move)
	}
	if e.onMove != nil {
		e.onMove(move)
	}
}

func (e *Engine) shuffleFinished(moves int) {
	if e.onShuffleDone != nil {
		e.onShuffleDone(moves)
	}
}
