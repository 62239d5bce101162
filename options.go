package cubik

import (
	"math/rand"
	"time"
)

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	animate           bool
	animationDuration time.Duration

	shuffleMin          int
	shuffleMax          int
	shuffleInitialDelay time.Duration
	shuffleMoveDelay    time.Duration

	moveHistory bool
	rng         *rand.Rand
	keys        map[FaceID]byte
}

func defaultConfig() *config {
	return &config{
		animate:             true,
		animationDuration:   280 * time.Millisecond,
		shuffleMin:          30,
		shuffleMax:          60,
		shuffleInitialDelay: time.Second,
		shuffleMoveDelay:    150 * time.Millisecond,
		moveHistory:         true,
	}
}

// WithAnimation enables or disables animated rotations. When disabled,
// rotations apply instantaneously.
func WithAnimation(enabled bool) Option {
	return func(c *config) {
		c.animate = enabled
	}
}

// WithAnimationDuration sets how long an animated quarter-turn takes.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *config) {
		c.animationDuration = d
	}
}

// WithShuffleRange sets the inclusive bounds the shuffle move count is
// drawn from.
func WithShuffleRange(min, max int) Option {
	return func(c *config) {
		c.shuffleMin = min
		c.shuffleMax = max
	}
}

// WithShuffleDelays sets the delay before the first shuffle move and
// the delay between consecutive moves.
func WithShuffleDelays(initial, between time.Duration) Option {
	return func(c *config) {
		c.shuffleInitialDelay = initial
		c.shuffleMoveDelay = between
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), completed moves are accessible via Moves().
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithRandSeed seeds the shuffle random source, making sequence length
// and every individual move reproducible.
func WithRandSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies a random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithKeyBinding rebinds a face's command key. Bindings are validated
// at construction; duplicates are fatal.
func WithKeyBinding(face FaceID, key byte) Option {
	return func(c *config) {
		if c.keys == nil {
			c.keys = make(map[FaceID]byte)
		}
		c.keys[face] = key
	}
}
