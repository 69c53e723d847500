// Package document provides port.DocumentStyleSink implementations for hosts
// without a browser DOM.
package document

import (
	"sort"
	"strings"
	"sync"
)

// Memory is an in-memory document root. It stands in for the browser
// document in the native CLI and in tests.
type Memory struct {
	mu        sync.RWMutex
	classes   map[string]struct{}
	visible   bool
	available bool
	history   []string
}

// NewMemory creates an available, visible document with no tags.
func NewMemory() *Memory {
	return &Memory{
		classes:   make(map[string]struct{}),
		visible:   true,
		available: true,
	}
}

// NewHeadless creates a document that reports no host, as during server-side rendering.
func NewHeadless() *Memory {
	m := NewMemory()
	m.available = false
	return m
}

// Available implements port.DocumentStyleSink.
func (m *Memory) Available() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.available
}

// AddClass implements port.DocumentStyleSink.
func (m *Memory) AddClass(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classes[name] = struct{}{}
	m.history = append(m.history, "+"+name)
}

// RemoveClass implements port.DocumentStyleSink.
func (m *Memory) RemoveClass(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.classes[name]; !ok {
		return
	}
	delete(m.classes, name)
	m.history = append(m.history, "-"+name)
}

// HasClass implements port.DocumentStyleSink.
func (m *Memory) HasClass(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.classes[name]
	return ok
}

// SetVisible implements port.DocumentStyleSink.
func (m *Memory) SetVisible(visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = visible
}

// Visible reports the current visibility flag.
func (m *Memory) Visible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible
}

// Classes returns the current tags in sorted order.
func (m *Memory) Classes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.classes))
	for name := range m.classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ClassAttribute renders the tags as an HTML class attribute value.
func (m *Memory) ClassAttribute() string {
	return strings.Join(m.Classes(), " ")
}

// History returns every add ("+tag") and effective remove ("-tag") in order.
func (m *Memory) History() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}
