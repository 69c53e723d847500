// Package scheduler provides port.Scheduler implementations.
package scheduler

import (
	"sync"
	"time"

	"github.com/bnema/vitrine/internal/application/port"
)

// Timer schedules tasks on the runtime timer heap. It tracks outstanding
// timers so Close can cancel them on teardown.
type Timer struct {
	mu     sync.Mutex
	next   uint64
	timers map[uint64]*time.Timer
	closed bool
}

// NewTimer creates a timer-backed scheduler.
func NewTimer() *Timer {
	return &Timer{timers: make(map[uint64]*time.Timer)}
}

// AfterFunc implements port.Scheduler.
func (s *Timer) AfterFunc(delay time.Duration, fn func()) port.CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return func() {}
	}

	id := s.next
	s.next++
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		_, live := s.timers[id]
		delete(s.timers, id)
		s.mu.Unlock()
		if live {
			fn()
		}
	})

	return func() { s.cancel(id) }
}

func (s *Timer) cancel(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending returns the number of tasks that have not fired yet.
func (s *Timer) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close cancels every outstanding task and refuses new ones.
func (s *Timer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.closed = true
}
