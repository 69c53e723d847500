package storage

import (
	"sync"
	"unicode/utf8"
)

// Memory is an in-process key-value store. It backs tests and headless
// previews, and can simulate quota limits and a broken backend.
type Memory struct {
	mu       sync.RWMutex
	items    map[string]string
	quota    int
	disabled bool
	writes   int
	reads    int
}

// NewMemory creates an empty in-memory store with no quota.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

// WithQuota limits the total number of characters (keys + values) stored.
func (m *Memory) WithQuota(chars int) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quota = chars
	return m
}

// SetDisabled makes every subsequent call fail with ErrUnavailable.
func (m *Memory) SetDisabled(disabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled = disabled
}

// GetItem implements port.KeyValueStore.
func (m *Memory) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return "", false, ErrUnavailable
	}
	m.reads++
	v, ok := m.items[key]
	return v, ok, nil
}

// SetItem implements port.KeyValueStore.
func (m *Memory) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return ErrUnavailable
	}
	if m.quota > 0 {
		used := 0
		for k, v := range m.items {
			if k == key {
				continue
			}
			used += utf8.RuneCountInString(k) + utf8.RuneCountInString(v)
		}
		if used+utf8.RuneCountInString(key)+utf8.RuneCountInString(value) > m.quota {
			return ErrQuotaExceeded
		}
	}
	m.writes++
	m.items[key] = value
	return nil
}

// RemoveItem implements port.KeyValueStore.
func (m *Memory) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return ErrUnavailable
	}
	m.writes++
	delete(m.items, key)
	return nil
}

// Has reports whether key is present, bypassing the disabled flag.
func (m *Memory) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[key]
	return ok
}

// Raw returns the stored value, bypassing the disabled flag.
func (m *Memory) Raw(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key]
}

// Put stores a value directly, bypassing quota and the disabled flag.
func (m *Memory) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

// Calls returns how many reads and writes reached the store.
func (m *Memory) Calls() (reads, writes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reads, m.writes
}
