// Package snapshot is the persistence gateway: the whole mutable state is
// serialized into one JSON document stored in a single file slot. Saves are
// explicit and whole; there is no partial write and no versioning.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/lomkinju/qienn/internal/checksum"
	"github.com/lomkinju/qienn/internal/models"
)

// Store reads and writes the snapshot slot.
type Store struct {
	path string

	mu          sync.Mutex
	lastWritten string // checksum of the last payload this process wrote
	lastSize    int64
}

// NewStore creates a Store for the given slot path. The parent directory is
// created on demand by Save.
func NewStore(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: resolve path: %w", err)
	}
	return &Store{path: abs}, nil
}

// Path returns the absolute slot path.
func (s *Store) Path() string { return s.path }

// Save serializes snap and atomically overwrites the slot:
// tmp file → fsync → rename.
func (s *Store) Save(snap *models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".qienn-tmp-*")
	if err != nil {
		return fmt.Errorf("snapshot: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("snapshot: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("snapshot: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("snapshot: rename: %w", err)
	}
	success = true

	s.mu.Lock()
	s.lastWritten = checksum.Sum(data)
	s.lastSize = int64(len(data))
	s.mu.Unlock()
	return nil
}

// LastChecksum returns the checksum of the last payload written by this
// process, or "" before the first save.
func (s *Store) LastChecksum() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWritten
}

// LastSize returns the byte size of the last payload written by this process.
func (s *Store) LastSize() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSize
}

// Load reads the slot. An absent slot returns (nil, nil): callers keep their
// defaults. A corrupt slot is logged and also treated as "no data": it is
// never partially applied and never propagated as a failure. Only real I/O
// trouble (permissions and the like) comes back as an error.
func (s *Store) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot: read: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Warn("snapshot: unparseable slot, keeping defaults",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return nil, nil
	}
	return &snap, nil
}

// WrittenByUs reports whether the slot's current content is the payload this
// process last wrote. The watcher uses it to ignore our own saves.
func (s *Store) WrittenByUs() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWritten != "" && checksum.Sum(data) == s.lastWritten
}
