package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryMedium keeps everything in process; it is the medium of tests and of the
// "memory" driver.
type MemoryMedium struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{items: make(map[string]string)}
}

func (m *MemoryMedium) Driver() string { return "memory" }

func (m *MemoryMedium) GetItem(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryMedium) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemoryMedium) RemoveItem(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *MemoryMedium) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
