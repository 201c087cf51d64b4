// Package store owns the persisted collections. It is the only package that talks
// to a storage.Medium; repositories read and write through it.
package store

import (
	"context"
	"encoding/json"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/storage"
	"nextlevel_lms/internal/util"
	"nextlevel_lms/pkg/logger"
	"nextlevel_lms/pkg/monitoring"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Second

// Store keeps the lms_data collections in memory and writes the whole set back to
// the medium after every mutation. Write failures are logged and counted, never
// returned: in-memory state simply runs ahead of the medium until the next good save.
type Store struct {
	Medium  storage.Medium
	Timeout time.Duration

	mu   sync.RWMutex
	data model.Dataset

	// keyMu serializes read-modify-write cycles on the standalone keys (cart, invoices, counter, session).
	keyMu sync.Mutex
}

// New loads lms_data from the medium and folds any legacy collections into it.
func New(medium storage.Medium) *Store {
	s := &Store{Medium: medium, Timeout: defaultTimeout}
	s.data = s.Load()
	s.migrateLegacy()
	return s
}

func (s *Store) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.Timeout)
}

// Load reads lms_data. Missing or unreadable data yields an empty dataset.
func (s *Store) Load() model.Dataset {
	raw, ok := s.ReadRaw(util.KeyData)
	if !ok {
		return model.EmptyDataset()
	}

	var data model.Dataset
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		logger.Log.Warn("Malformed stored data, starting empty",
			zap.String("key", util.KeyData),
			zap.Error(err),
		)
		return model.EmptyDataset()
	}
	data.Normalize()
	return data
}

// Save writes the full dataset in a single call.
func (s *Store) Save(data model.Dataset) {
	data.Normalize()
	s.WriteJSON(util.KeyData, data)
}

// Snapshot returns a copy of the current dataset that callers may keep or mutate.
func (s *Store) Snapshot() model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Read runs fn against the live dataset under a read lock. fn must not retain or modify it.
func (s *Store) Read(fn func(data *model.Dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update applies fn to a copy of the dataset. When fn succeeds the copy replaces the
// in-memory state and is saved; when it fails nothing changes and its error is returned.
func (s *Store) Update(fn func(data *model.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.data = next
	s.Save(next)
	return nil
}

// ReadRaw returns the stored string for key. Read errors are logged and reported as absent.
func (s *Store) ReadRaw(key string) (string, bool) {
	ctx, cancel := s.opContext()
	defer cancel()

	v, ok, err := s.Medium.GetItem(ctx, key)
	if err != nil {
		logger.Log.Warn("Failed to read from storage", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

// WriteRaw stores value under key and reports whether the medium accepted it.
func (s *Store) WriteRaw(key, value string) bool {
	ctx, cancel := s.opContext()
	defer cancel()

	if err := s.Medium.SetItem(ctx, key, value); err != nil {
		monitoring.StorePersistFailures.WithLabelValues(key).Inc()
		logger.Log.Error("Failed to write to storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) Remove(key string) bool {
	ctx, cancel := s.opContext()
	defer cancel()

	if err := s.Medium.RemoveItem(ctx, key); err != nil {
		monitoring.StorePersistFailures.WithLabelValues(key).Inc()
		logger.Log.Error("Failed to remove from storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// ReadJSON decodes the value under key into v. It reports false when the key is
// absent or holds malformed JSON.
func (s *Store) ReadJSON(key string, v interface{}) bool {
	raw, ok := s.ReadRaw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.Log.Warn("Malformed stored value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) WriteJSON(key string, v interface{}) bool {
	data, err := json.Marshal(v)
	if err != nil {
		monitoring.StorePersistFailures.WithLabelValues(key).Inc()
		logger.Log.Error("Failed to encode value", zap.String("key", key), zap.Error(err))
		return false
	}
	return s.WriteRaw(key, string(data))
}

// Locked runs fn while holding the standalone-key lock.
func (s *Store) Locked(fn func()) {
	s.keyMu.Lock()
	defer s.keyMu.Unlock()
	fn()
}
