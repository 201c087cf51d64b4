package storage

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
)

// FileMedium stores one file per key under Dir. Writes go through a temp file and
// a rename so a crash never leaves a half-written value.
type FileMedium struct {
	Dir string
}

func NewFileMedium(dir string) (*FileMedium, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return &FileMedium{Dir: dir}, nil
}

func (m *FileMedium) Driver() string { return "file" }

func (m *FileMedium) path(key string) string {
	return filepath.Join(m.Dir, url.PathEscape(key)+".json")
}

func (m *FileMedium) GetItem(ctx context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(m.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (m *FileMedium) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	tmp, err := os.CreateTemp(m.Dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), m.path(key))
}

func (m *FileMedium) RemoveItem(ctx context.Context, key string) error {
	err := os.Remove(m.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
