// Package filestore implements storage.Storage with one file per key under
// a directory. It backs the session slot, which should be cheap to inspect
// and wipe by hand.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store writes each key as <dir>/<sanitized-key>.
type Store struct {
	dir string
}

// New creates dir (and parents) if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating storage dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %q: %w", key, err)
	}
	return data, nil
}

func (s *Store) Write(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o600); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

// path maps a key to a file name, replacing anything that could escape the
// directory or upset the filesystem.
func (s *Store) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dir, safe)
}
