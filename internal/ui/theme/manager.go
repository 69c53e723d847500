// Package theme owns the live appearance preference of a page load and wires
// every change into the document and the preference store.
package theme

import (
	"context"
	"sync"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/application/usecase"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/logging"
)

// State is the lifecycle state of a Manager.
type State int

const (
	// StateUninitialized means the startup preference has not been resolved yet.
	StateUninitialized State = iota
	// StateReady means the resolved preference is applied and live.
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "uninitialized"
}

// Listener is notified after every change of the live preference.
type Listener func(entity.PreferenceRecord)

// Deps are the collaborators of a Manager.
type Deps struct {
	Themes      entity.ThemeSet
	Environment entity.EnvironmentConfig
	Store       *usecase.PreferenceStore
	Initializer *usecase.InitializePreferenceUseCase
	Applier     *usecase.ApplyAppearanceUseCase
	// Scheduler defers initialization and persistence. Nil runs them inline.
	Scheduler port.Scheduler
}

// Manager handles the live {theme, mode} state of one process.
type Manager struct {
	themes      entity.ThemeSet
	env         entity.EnvironmentConfig
	store       *usecase.PreferenceStore
	initializer *usecase.InitializePreferenceUseCase
	applier     *usecase.ApplyAppearanceUseCase
	scheduler   port.Scheduler

	mu             sync.RWMutex
	state          State
	record         entity.PreferenceRecord
	source         string
	dirty          bool // mutated before initialization finished
	persistPending bool
	cancelInit     port.CancelFunc
	cancelPersist  port.CancelFunc
	listeners      map[uint64]Listener
	nextListener   uint64
}

// NewManager creates an uninitialized manager. Reads return the built-in
// default pair (first palette, light) until Initialize has run.
func NewManager(deps Deps) *Manager {
	return &Manager{
		themes:      deps.Themes,
		env:         deps.Environment,
		store:       deps.Store,
		initializer: deps.Initializer,
		applier:     deps.Applier,
		scheduler:   deps.Scheduler,
		record:      entity.DefaultEnvironmentConfig(deps.Themes).DefaultRecord(),
		listeners:   make(map[uint64]Listener),
	}
}

// Start hides the document until a theme is applied and schedules
// initialization as a one-shot deferred task.
func (m *Manager) Start(ctx context.Context) {
	m.applier.Guard(ctx)

	if m.scheduler == nil {
		m.Initialize(ctx)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateReady || m.cancelInit != nil {
		return
	}
	m.cancelInit = m.scheduler.AfterFunc(0, func() {
		m.Initialize(ctx)
	})
}

// Initialize resolves the startup preference, applies it and marks the
// manager ready. Only the first call has an effect.
func (m *Manager) Initialize(ctx context.Context) {
	log := logging.FromContext(ctx)

	m.mu.RLock()
	ready := m.state == StateReady
	m.mu.RUnlock()
	if ready {
		return
	}

	out := m.initializer.Execute(ctx)

	m.mu.Lock()
	if m.state == StateReady {
		m.mu.Unlock()
		return
	}
	m.state = StateReady
	m.source = out.Source
	m.cancelInit = nil
	// A change made while resolving wins over the resolved value.
	dirty := m.dirty
	if !dirty {
		m.record = out.Record
	}
	record := m.record
	m.applier.Apply(ctx, record.Theme, record.Mode)
	m.mu.Unlock()

	if dirty {
		m.schedulePersist(ctx)
	}

	log.Info().
		Str("theme", string(record.Theme)).
		Str("mode", string(record.Mode)).
		Str("source", out.Source).
		Bool("switching_enabled", m.env.SwitchingEnabled).
		Msg("appearance preference ready")

	m.notify(record)
}

// Read returns the live preference.
func (m *Manager) Read() entity.PreferenceRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.record
}

// State returns the lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Ready reports whether initialization has completed.
func (m *Manager) Ready() bool {
	return m.State() == StateReady
}

// Source returns the tier the startup preference came from, empty before
// initialization.
func (m *Manager) Source() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.source
}

// SwitchingEnabled reports whether switching controls should be shown.
func (m *Manager) SwitchingEnabled() bool {
	return m.env.SwitchingEnabled
}

// Environment returns the deployment configuration the manager runs with.
func (m *Manager) Environment() entity.EnvironmentConfig {
	return m.env
}

// Themes returns the closed palette set.
func (m *Manager) Themes() entity.ThemeSet {
	return m.themes
}

// SetTheme switches the palette. Unknown ids are rejected and leave the
// live state unchanged.
func (m *Manager) SetTheme(ctx context.Context, id string) bool {
	theme, ok := m.themes.Parse(id)
	if !ok {
		logging.FromContext(ctx).Debug().Str("theme", id).Msg("rejecting unknown theme")
		return false
	}
	m.mutate(ctx, func(r *entity.PreferenceRecord) {
		r.Theme = theme
	})
	return true
}

// SetMode switches between light and dark. Invalid modes are rejected.
func (m *Manager) SetMode(ctx context.Context, mode entity.Mode) bool {
	if !mode.IsValid() {
		logging.FromContext(ctx).Debug().Str("mode", string(mode)).Msg("rejecting unknown mode")
		return false
	}
	m.mutate(ctx, func(r *entity.PreferenceRecord) {
		r.Mode = mode
	})
	return true
}

// ToggleMode flips light and dark.
func (m *Manager) ToggleMode(ctx context.Context) {
	m.mutate(ctx, func(r *entity.PreferenceRecord) {
		r.Mode = r.Mode.Toggle()
	})
}

// Reset clears the stored record and re-applies the deployment defaults.
// Before initialization it also drops earlier mutations, so Initialize
// resolves against the cleared store.
func (m *Manager) Reset(ctx context.Context) {
	m.mu.Lock()
	if m.cancelPersist != nil {
		m.cancelPersist()
		m.cancelPersist = nil
	}
	m.persistPending = false
	m.record = m.env.DefaultRecord()
	m.dirty = false
	record := m.record
	m.applier.Apply(ctx, record.Theme, record.Mode)
	m.mu.Unlock()

	if m.env.PersistenceEnabled && m.store != nil {
		m.store.Clear(ctx)
	}

	logging.FromContext(ctx).Info().Str("record", record.String()).Msg("appearance preference reset")
	m.notify(record)
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (m *Manager) Subscribe(fn Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextListener
	m.nextListener++
	m.listeners[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// Flush runs a pending persistence task now. Short-lived hosts call it
// before Close so the latest change is not dropped.
func (m *Manager) Flush(ctx context.Context) {
	m.mu.Lock()
	if !m.persistPending {
		m.mu.Unlock()
		return
	}
	if m.cancelPersist != nil {
		m.cancelPersist()
	}
	m.mu.Unlock()

	m.persist(ctx)
}

// Close cancels pending initialization, persistence and transition cleanup.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.cancelInit != nil {
		m.cancelInit()
		m.cancelInit = nil
	}
	if m.cancelPersist != nil {
		m.cancelPersist()
		m.cancelPersist = nil
	}
	m.persistPending = false
	m.mu.Unlock()

	m.applier.Close()
}

func (m *Manager) mutate(ctx context.Context, change func(*entity.PreferenceRecord)) {
	m.mu.Lock()
	change(&m.record)
	if m.state == StateUninitialized {
		m.dirty = true
	}
	record := m.record
	m.applier.Apply(ctx, record.Theme, record.Mode)
	m.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("record", record.String()).Msg("appearance preference changed")

	m.schedulePersist(ctx)
	m.notify(record)
}

// schedulePersist queues one save of the latest live state. Calls made while
// a save is pending coalesce into it.
func (m *Manager) schedulePersist(ctx context.Context) {
	if !m.env.PersistenceEnabled || m.store == nil {
		return
	}

	m.mu.Lock()
	if m.state == StateUninitialized || m.persistPending {
		// Initialize persists dirty state once it has run.
		m.mu.Unlock()
		return
	}
	if m.scheduler == nil {
		m.mu.Unlock()
		m.persist(ctx)
		return
	}
	m.persistPending = true
	m.cancelPersist = m.scheduler.AfterFunc(0, func() {
		m.persist(ctx)
	})
	m.mu.Unlock()
}

func (m *Manager) persist(ctx context.Context) {
	m.mu.Lock()
	m.persistPending = false
	m.cancelPersist = nil
	record := m.record
	m.mu.Unlock()

	m.store.Save(ctx, record)
}

func (m *Manager) notify(record entity.PreferenceRecord) {
	m.mu.RLock()
	listeners := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.RUnlock()

	for _, fn := range listeners {
		fn(record)
	}
}
