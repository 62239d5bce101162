// Package sched is a cooperative single-threaded timer and animation
// driver. Nothing runs on its own: an external frame source calls
// Advance with the elapsed time and due callbacks fire inline, in
// virtual-time order. Callbacks may schedule further work during
// Advance; relative delays stack from the moment the callback fires,
// so chained sequences drain correctly across any advance size.
package sched

import "time"

type timer struct {
	deadline time.Duration
	seq      uint64
	fn       func()
}

type anim struct {
	start    time.Duration
	duration time.Duration
	seq      uint64
	step     func(progress float64)
	done     func()
}

func (a *anim) end() time.Duration { return a.start + a.duration }

// Scheduler tracks pending timers and animations against an internal
// monotonic clock advanced by the caller.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*timer
	anims  []*anim
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() time.Duration { return s.now }

// After runs fn once delay has elapsed. A non-positive delay fires on
// the next Advance.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.timers = append(s.timers, &timer{deadline: s.now + delay, seq: s.seq, fn: fn})
}

// Schedule starts an animation of the given duration. step receives
// monotonically increasing progress in (0, 1]; done fires after the
// final step. A non-positive duration completes on the next Advance.
func (s *Scheduler) Schedule(duration time.Duration, step func(progress float64), done func()) {
	if duration < 0 {
		duration = 0
	}
	s.seq++
	s.anims = append(s.anims, &anim{
		start:    s.now,
		duration: duration,
		seq:      s.seq,
		step:     step,
		done:     done,
	})
}

// Idle reports whether no timers or animations are pending.
func (s *Scheduler) Idle() bool {
	return len(s.timers) == 0 && len(s.anims) == 0
}

// Advance moves the clock forward by dt. Timer fires and animation
// completions are processed as discrete events in virtual-time order,
// with the clock set to each event's own deadline while it runs, so
// work scheduled from inside a callback lands at the right moment.
// Still-running animations then receive one partial step at the new
// clock value.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for {
		at, ok := s.nextEventTime(target)
		if !ok {
			break
		}
		s.now = at
		s.fireEventsAt(at)
	}

	s.now = target
	for _, a := range s.anims {
		if a.step != nil && a.duration > 0 && s.now > a.start {
			a.step(float64(s.now-a.start) / float64(a.duration))
		}
	}
}

// nextEventTime finds the earliest pending deadline within the window.
func (s *Scheduler) nextEventTime(target time.Duration) (time.Duration, bool) {
	best := target + 1
	found := false
	for _, t := range s.timers {
		if t.deadline <= target && t.deadline < best {
			best = t.deadline
			found = true
		}
	}
	for _, a := range s.anims {
		if a.end() <= target && a.end() < best {
			best = a.end()
			found = true
		}
	}
	return best, found
}

// fireEventsAt fires every timer and animation due exactly at t, in
// scheduling order. Events added by the fired callbacks are picked up
// by the caller's loop.
func (s *Scheduler) fireEventsAt(t time.Duration) {
	for {
		var bestTimer *timer
		var bestAnim *anim
		ti, ai := -1, -1
		for i, tm := range s.timers {
			if tm.deadline == t && (bestTimer == nil || tm.seq < bestTimer.seq) {
				bestTimer, ti = tm, i
			}
		}
		for i, a := range s.anims {
			if a.end() == t && (bestAnim == nil || a.seq < bestAnim.seq) {
				bestAnim, ai = a, i
			}
		}

		switch {
		case bestTimer != nil && (bestAnim == nil || bestTimer.seq < bestAnim.seq):
			s.timers = append(s.timers[:ti], s.timers[ti+1:]...)
			bestTimer.fn()
		case bestAnim != nil:
			s.anims = append(s.anims[:ai], s.anims[ai+1:]...)
			if bestAnim.step != nil {
				bestAnim.step(1)
			}
			if bestAnim.done != nil {
				bestAnim.done()
			}
		default:
			return
		}
	}
}
