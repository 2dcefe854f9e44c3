package voice

import (
	"sync"
	"time"
)

// Clock reports elapsed session time in seconds. Injected so the
// scheduler can be tested deterministically.
type Clock interface {
	Now() float64
}

type wallClock struct {
	start time.Time
}

// NewWallClock starts counting from now.
func NewWallClock() Clock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// Scheduler assigns gapless start times to audio frames. Frames queue
// back to back: each frame starts where the previous one ends, or
// immediately if the queue has drained.
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	next   float64
	active map[string]struct{}
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = NewWallClock()
	}
	return &Scheduler{
		clock:  clock,
		active: make(map[string]struct{}),
	}
}

// Schedule assigns a start time to the frame and advances the cursor
// by its duration. The frame joins the active set until Release.
func (s *Scheduler) Schedule(id string, duration float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.next
	if now := s.clock.Now(); now > start {
		start = now
	}
	s.next = start + duration
	s.active[id] = struct{}{}
	return start
}

// Release removes a finished frame and reports how many remain.
func (s *Scheduler) Release(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, id)
	return len(s.active)
}

// Interrupt hard-stops playback: the active set empties and the cursor
// resets so the next frame plays immediately. Returns the ids that
// were cut off.
func (s *Scheduler) Interrupt() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	stopped := make([]string, 0, len(s.active))
	for id := range s.active {
		stopped = append(stopped, id)
	}
	s.active = make(map[string]struct{})
	s.next = 0
	return stopped
}

// Playing reports whether any frame is queued or in flight.
func (s *Scheduler) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}
