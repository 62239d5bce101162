package cubik

import (
	"math/rand"
	"time"

	"github.com/jaroslaw-wieczorek/cubik/internal/sched"
)

// ShuffleState is the shuffle scheduler's state.
type ShuffleState int

const (
	ShuffleIdle ShuffleState = iota
	ShuffleRunning
)

func (s ShuffleState) String() string {
	if s == ShuffleRunning {
		return "running"
	}
	return "idle"
}

// Shuffler drives an automated randomized move sequence through the
// dispatcher. While it runs, animation is suppressed and the normal
// input channel is disarmed; the shuffler is the only caller the
// dispatcher lets through. A running sequence cannot be aborted, only
// a second Start can be refused.
type Shuffler struct {
	state ShuffleState
	clock *sched.Scheduler
	rng   *rand.Rand

	minMoves     int
	maxMoves     int
	initialDelay time.Duration
	moveDelay    time.Duration

	keys     []byte // both case forms of every face key
	dispatch func(key byte) Ack
	exec     *Executor

	restoreAnimate bool
	planned        int
	onDone         func(moves int)
}

func newShuffler(reg *Registry, clock *sched.Scheduler, exec *Executor, cfg *config) *Shuffler {
	s := &Shuffler{
		state:        ShuffleIdle,
		clock:        clock,
		rng:          cfg.rng,
		minMoves:     cfg.shuffleMin,
		maxMoves:     cfg.shuffleMax,
		initialDelay: cfg.shuffleInitialDelay,
		moveDelay:    cfg.shuffleMoveDelay,
		exec:         exec,
	}
	for _, f := range reg.Faces() {
		s.keys = append(s.keys, f.Key, upperByte(f.Key))
	}
	return s
}

// State returns the shuffler's state.
func (s *Shuffler) State() ShuffleState { return s.state }

// Running reports whether a sequence is in progress.
func (s *Shuffler) Running() bool { return s.state == ShuffleRunning }

// Planned returns the move count of the current or last sequence.
func (s *Shuffler) Planned() int { return s.planned }

// Start generates a randomized sequence and schedules its playback.
// It returns false without side effects if a sequence is already
// running. The whole sequence is drawn up front, so a seeded random
// source reproduces both the length and every move.
func (s *Shuffler) Start() bool {
	if s.state == ShuffleRunning {
		return false
	}

	n := s.minMoves + s.rng.Intn(s.maxMoves-s.minMoves+1)
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = s.keys[s.rng.Intn(len(s.keys))]
	}

	s.state = ShuffleRunning
	s.planned = n
	s.restoreAnimate = s.exec.Animate()
	s.exec.SetAnimate(false)

	i := 0
	var playNext func()
	playNext = func() {
		if i >= len(seq) {
			s.finish(len(seq))
			return
		}
		key := seq[i]
		i++
		s.dispatch(key)
		s.clock.After(s.moveDelay, playNext)
	}
	s.clock.After(s.initialDelay, playNext)
	return true
}

func (s *Shuffler) finish(moves int) {
	s.exec.SetAnimate(s.restoreAnimate)
	s.state = ShuffleIdle
	if s.onDone != nil {
		s.onDone(moves)
	}
}
