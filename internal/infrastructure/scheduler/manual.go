package scheduler

import (
	"sort"
	"sync"
	"time"

	"github.com/bnema/vitrine/internal/application/port"
)

type manualTask struct {
	id  uint64
	due time.Duration
	fn  func()
}

// Manual is a deterministic scheduler driven by explicit Advance calls.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	next  uint64
	tasks map[uint64]*manualTask
}

// NewManual creates a manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{tasks: make(map[uint64]*manualTask)}
}

// AfterFunc implements port.Scheduler.
func (s *Manual) AfterFunc(delay time.Duration, fn func()) port.CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.tasks[id] = &manualTask{id: id, due: s.now + delay, fn: fn}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.tasks, id)
	}
}

// Advance moves virtual time forward by d and runs every task that became due,
// in due order. Tasks scheduled by running tasks are honored if they fall
// inside the window.
func (s *Manual) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		task := s.popDue(target)
		if task == nil {
			break
		}
		task.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

// RunPending runs tasks due at the current virtual time (zero-delay tasks).
func (s *Manual) RunPending() {
	s.Advance(0)
}

// Pending returns the number of scheduled tasks that have not run.
func (s *Manual) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Manual) popDue(target time.Duration) *manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	due := make([]*manualTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.due <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].id < due[j].id
		}
		return due[i].due < due[j].due
	})

	task := due[0]
	delete(s.tasks, task.id)
	if task.due > s.now {
		s.now = task.due
	}
	return task
}
