package testutil

import (
	"context"
	"errors"
	"nextlevel_lms/internal/storage"
	"sync"
)

var ErrInjected = errors.New("injected storage failure")

// FlakyMedium wraps a MemoryMedium and fails reads or writes of chosen keys on demand.
type FlakyMedium struct {
	*storage.MemoryMedium

	mu         sync.Mutex
	failWrites map[string]bool
	failReads  map[string]bool
	allWrites  bool
	Writes     int
}

func NewFlakyMedium() *FlakyMedium {
	return &FlakyMedium{
		MemoryMedium: storage.NewMemoryMedium(),
		failWrites:   map[string]bool{},
		failReads:    map[string]bool{},
	}
}

func (m *FlakyMedium) FailWrites(keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(keys) == 0 {
		m.allWrites = true
		return
	}
	for _, k := range keys {
		m.failWrites[k] = true
	}
}

func (m *FlakyMedium) FailReads(keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		m.failReads[k] = true
	}
}

func (m *FlakyMedium) Heal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = map[string]bool{}
	m.failReads = map[string]bool{}
	m.allWrites = false
}

func (m *FlakyMedium) GetItem(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	fail := m.failReads[key]
	m.mu.Unlock()
	if fail {
		return "", false, ErrInjected
	}
	return m.MemoryMedium.GetItem(ctx, key)
}

func (m *FlakyMedium) SetItem(ctx context.Context, key, value string) error {
	m.mu.Lock()
	fail := m.allWrites || m.failWrites[key]
	m.Writes++
	m.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return m.MemoryMedium.SetItem(ctx, key, value)
}

func (m *FlakyMedium) RemoveItem(ctx context.Context, key string) error {
	m.mu.Lock()
	fail := m.allWrites || m.failWrites[key]
	m.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return m.MemoryMedium.RemoveItem(ctx, key)
}

// Raw returns what the medium holds under key, bypassing injected failures.
func (m *FlakyMedium) Raw(key string) (string, bool) {
	v, ok, _ := m.MemoryMedium.GetItem(context.Background(), key)
	return v, ok
}

// Put seeds key directly.
func (m *FlakyMedium) Put(key, value string) {
	_ = m.MemoryMedium.SetItem(context.Background(), key, value)
}
