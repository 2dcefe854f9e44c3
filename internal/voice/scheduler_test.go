package voice

import "testing"

// fakeClock is a settable clock for deterministic scheduling.
type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

func TestSchedulerGaplessQueue(t *testing.T) {
	clock := &fakeClock{}
	s := NewScheduler(clock)

	if start := s.Schedule("a", 2); start != 0 {
		t.Errorf("first frame start = %v, want 0", start)
	}
	if start := s.Schedule("b", 1); start != 2 {
		t.Errorf("second frame start = %v, want 2 (end of first)", start)
	}
	if start := s.Schedule("c", 1); start != 3 {
		t.Errorf("third frame start = %v, want 3", start)
	}
	if !s.Playing() {
		t.Error("expected Playing while frames queued")
	}
}

func TestSchedulerStartsImmediatelyAfterDrain(t *testing.T) {
	clock := &fakeClock{}
	s := NewScheduler(clock)

	s.Schedule("a", 1)
	// Playback drained and time moved past the cursor.
	clock.now = 5
	if start := s.Schedule("b", 1); start != 5 {
		t.Errorf("start after drain = %v, want 5 (current time)", start)
	}
}

func TestSchedulerRelease(t *testing.T) {
	s := NewScheduler(&fakeClock{})
	s.Schedule("a", 1)
	s.Schedule("b", 1)

	if remaining := s.Release("a"); remaining != 1 {
		t.Errorf("remaining = %d, want 1", remaining)
	}
	if remaining := s.Release("b"); remaining != 0 {
		t.Errorf("remaining = %d, want 0", remaining)
	}
	if s.Playing() {
		t.Error("expected not Playing after all released")
	}
}

func TestSchedulerInterrupt(t *testing.T) {
	clock := &fakeClock{now: 10}
	s := NewScheduler(clock)
	s.Schedule("a", 2)
	s.Schedule("b", 2)

	stopped := s.Interrupt()
	if len(stopped) != 2 {
		t.Errorf("stopped %d frames, want 2", len(stopped))
	}
	if s.Playing() {
		t.Error("expected not Playing after interrupt")
	}

	// Cursor resets to zero, so the next frame starts at current time.
	clock.now = 0
	if start := s.Schedule("c", 1); start != 0 {
		t.Errorf("start after interrupt = %v, want 0", start)
	}
}
