package sched

import (
	"testing"
	"time"
)

func TestAfterFiresAtDeadline(t *testing.T) {
	s := New()
	fired := false
	s.After(100*time.Millisecond, func() { fired = true })

	s.Advance(99 * time.Millisecond)
	if fired {
		t.Fatal("timer fired early")
	}
	s.Advance(1 * time.Millisecond)
	if !fired {
		t.Fatal("timer did not fire at deadline")
	}
	if !s.Idle() {
		t.Error("scheduler should be idle after firing")
	}
}

func TestTimersFireInDeadlineOrder(t *testing.T) {
	s := New()
	var order []int
	s.After(20*time.Millisecond, func() { order = append(order, 2) })
	s.After(10*time.Millisecond, func() { order = append(order, 1) })
	s.After(30*time.Millisecond, func() { order = append(order, 3) })

	s.Advance(time.Second)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("fire order = %v, want [1 2 3]", order)
	}
}

func TestChainedTimersFireWithinOneAdvance(t *testing.T) {
	// A timer chain with delays all inside dt must drain fully, the
	// way a queued move sequence does when time jumps forward.
	s := New()
	count := 0
	var link func()
	link = func() {
		count++
		if count < 5 {
			s.After(10*time.Millisecond, link)
		}
	}
	s.After(10*time.Millisecond, link)

	s.Advance(time.Second)
	if count != 5 {
		t.Errorf("chain fired %d times, want 5", count)
	}
}

func TestScheduleReportsProgressAndCompletes(t *testing.T) {
	s := New()
	var progress []float64
	done := false
	s.Schedule(100*time.Millisecond, func(p float64) { progress = append(progress, p) }, func() { done = true })

	s.Advance(50 * time.Millisecond)
	s.Advance(25 * time.Millisecond)
	if done {
		t.Fatal("animation completed early")
	}
	s.Advance(50 * time.Millisecond)
	if !done {
		t.Fatal("animation did not complete")
	}

	if len(progress) != 3 {
		t.Fatalf("got %d steps, want 3", len(progress))
	}
	if progress[0] != 0.5 || progress[1] != 0.75 || progress[2] != 1.0 {
		t.Errorf("progress = %v, want [0.5 0.75 1]", progress)
	}
}

func TestZeroDurationAnimationCompletesNextAdvance(t *testing.T) {
	s := New()
	done := false
	s.Schedule(0, nil, func() { done = true })
	s.Advance(0)
	if !done {
		t.Error("zero-duration animation should complete on next Advance")
	}
}

func TestDoneCallbackMayScheduleMore(t *testing.T) {
	s := New()
	fired := false
	s.Schedule(10*time.Millisecond, nil, func() {
		s.After(5*time.Millisecond, func() { fired = true })
	})

	s.Advance(10 * time.Millisecond)
	if fired {
		t.Fatal("follow-up timer fired too early")
	}
	s.Advance(5 * time.Millisecond)
	if !fired {
		t.Error("follow-up timer scheduled from done callback never fired")
	}
}
