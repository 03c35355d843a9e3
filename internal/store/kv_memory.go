package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// MemoryKV keeps entries in process memory. Used for local development and tests.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string]Entry)}
}

func (m *MemoryKV) Get(ctx context.Context, key string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return copyEntry(e), nil
}

func (m *MemoryKV) Set(ctx context.Context, key string, value json.RawMessage) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	version := m.entries[key].Version + 1
	m.entries[key] = Entry{Key: key, Value: cloneBytes(value), Version: version}
	return version, nil
}

func (m *MemoryKV) SetIfVersion(ctx context.Context, key string, value json.RawMessage, version int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.entries[key]
	if (!exists && version != 0) || (exists && current.Version != version) {
		return 0, ErrVersionConflict
	}
	m.entries[key] = Entry{Key: key, Value: cloneBytes(value), Version: version + 1}
	return version + 1, nil
}

func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; !ok {
		return ErrNotFound
	}
	delete(m.entries, key)
	return nil
}

func (m *MemoryKV) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]Entry, 0)
	for k, e := range m.entries {
		if strings.HasPrefix(k, prefix) {
			entries = append(entries, copyEntry(e))
		}
	}
	sortEntries(entries)
	return entries, nil
}

func copyEntry(e Entry) Entry {
	return Entry{Key: e.Key, Value: cloneBytes(e.Value), Version: e.Version}
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
