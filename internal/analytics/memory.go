package analytics

import (
	"sync"

	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

// MemorySink buffers events in a bounded channel and drains them into
// an in-process slice. It backs local development and tests, where no
// external pipeline is configured.
type MemorySink struct {
	ch     chan Event
	logger *logging.Logger

	mu     sync.Mutex
	events []Event
	done   chan struct{}
}

// NewMemorySink starts a sink with the given buffer size.
func NewMemorySink(buffer int, logger *logging.Logger) *MemorySink {
	if buffer <= 0 {
		buffer = 256
	}
	if logger == nil {
		logger = logging.Default()
	}
	s := &MemorySink{
		ch:     make(chan Event, buffer),
		logger: logger,
		done:   make(chan struct{}),
	}
	go s.drain()
	return s
}

// Push enqueues an event without blocking. When the buffer is full the
// event is dropped and logged.
func (s *MemorySink) Push(event Event) {
	select {
	case s.ch <- event:
	default:
		s.logger.Warn("analytics buffer full, dropping event",
			"event", event.Event,
			"formLocation", event.FormLocation,
		)
	}
}

func (s *MemorySink) drain() {
	for event := range s.ch {
		s.mu.Lock()
		s.events = append(s.events, event)
		s.mu.Unlock()
	}
	close(s.done)
}

// Events returns a copy of everything drained so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Close stops the drain loop after flushing buffered events.
func (s *MemorySink) Close() {
	close(s.ch)
	<-s.done
}
