// Package bootstrap wires the appearance engine from host adapters.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/vitrine/internal/logging"
)

type phase struct {
	name string
	dur  time.Duration
}

// StartupTimer records the phases between engine construction and the first
// applied preference, and reports them once.
type StartupTimer struct {
	mu       sync.Mutex
	start    time.Time
	last     time.Time
	phases   []phase
	finished bool
}

// NewStartupTimer creates a timer starting from now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark records the time since the previous mark under name. Marks after
// Finish are ignored.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.markLocked(name)
}

func (t *StartupTimer) markLocked(name string) {
	if t.finished {
		return
	}
	now := time.Now()
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
}

// Phases returns the recorded phase names in order.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.phases))
	for _, p := range t.phases {
		names = append(names, p.name)
	}
	return names
}

// Total returns the time from creation to Finish, or to now if unfinished.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return t.last.Sub(t.start)
	}
	return time.Since(t.start)
}

// Finish records the last phase and logs the report, at info when verbose and
// debug otherwise. Only the first call has an effect; it reports whether it
// logged.
func (t *StartupTimer) Finish(ctx context.Context, name string, verbose bool) bool {
	t.mu.Lock()
	if t.finished {
		t.mu.Unlock()
		return false
	}
	t.markLocked(name)
	t.finished = true
	phases := append([]phase(nil), t.phases...)
	total := t.last.Sub(t.start)
	t.mu.Unlock()

	level := zerolog.DebugLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	event := logging.FromContext(ctx).WithLevel(level).Dur("total", total)
	for _, p := range phases {
		event = event.Dur(p.name, p.dur)
	}
	event.Msg("appearance startup timing")
	return true
}
