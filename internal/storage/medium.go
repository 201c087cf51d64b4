// Package storage holds the key/value media the store persists into. Every medium
// keeps string values under string keys, in the manner of browser localStorage.
package storage

import (
	"context"
	"errors"
)

// Medium is a string key/value store. GetItem reports ok=false for a missing key
// rather than an error.
type Medium interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Driver names a medium for logs and metrics.
type Driver interface {
	Driver() string
}

var ErrEmptyKey = errors.New("storage: empty key")

func DriverOf(m Medium) string {
	if d, ok := m.(Driver); ok {
		return d.Driver()
	}
	return "unknown"
}
