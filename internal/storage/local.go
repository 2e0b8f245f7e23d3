package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Compile-time check that LocalStore implements Store.
var _ Store = (*LocalStore)(nil)

// LocalStore implements Store on the local filesystem.
// It takes no locks: concurrent writers of the same entry produce the same
// bytes, so the last writer wins harmlessly.
type LocalStore struct {
	dir string
}

// NewLocalStore creates a LocalStore rooted at dir.
// The directory is not created until EnsureDir is called.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Dir returns the cache directory path.
func (s *LocalStore) Dir() string {
	return s.dir
}

// EnsureDir creates the cache directory if needed.
func (s *LocalStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	return nil
}

// Path returns <dir>/<key>.jpg.
func (s *LocalStore) Path(key string) string {
	return filepath.Join(s.dir, key+EntryExt)
}

// Exists reports whether a regular file is stored for key.
func (s *LocalStore) Exists(key string) bool {
	info, err := os.Stat(s.Path(key))
	return err == nil && info.Mode().IsRegular()
}

// Read returns the entry bytes for key, or ok=false if it does not exist.
func (s *LocalStore) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}
	return data, true, nil
}

// EntryOutcome records what happened to one directory entry during Clear.
type EntryOutcome struct {
	Name string
	// Size is only meaningful when Counted is true.
	Size int64
	// Counted is false when the entry's metadata could not be read.
	Counted bool
	// RemoveErr is the deletion failure, if any.
	RemoveErr error
}

// ClearResult summarizes a Clear.
type ClearResult struct {
	// DirMissing is true when there was no cache directory to clear.
	DirMissing bool
	Entries    []EntryOutcome
	// ListErr is set when the directory exists but could not be listed.
	ListErr error
	// DirRemoveErr is set when the directory could not be removed afterwards.
	DirRemoveErr error
}

// Count returns the number of entries whose metadata was read.
func (r ClearResult) Count() int {
	n := 0
	for _, e := range r.Entries {
		if e.Counted {
			n++
		}
	}
	return n
}

// Bytes returns the total size of counted entries.
func (r ClearResult) Bytes() int64 {
	var total int64
	for _, e := range r.Entries {
		if e.Counted {
			total += e.Size
		}
	}
	return total
}

// Failed returns the number of entries that could not be removed.
func (r ClearResult) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.RemoveErr != nil {
			n++
		}
	}
	return n
}

// Clear deletes every entry in the cache directory, then the directory.
// Each failure is recorded and the sweep continues.
func (s *LocalStore) Clear() ClearResult {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return ClearResult{DirMissing: true}
	}

	var res ClearResult

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		res.ListErr = err
	}

	for _, entry := range entries {
		outcome := EntryOutcome{Name: entry.Name()}
		if info, err := entry.Info(); err == nil {
			outcome.Size = info.Size()
			outcome.Counted = true
		}
		outcome.RemoveErr = os.Remove(filepath.Join(s.dir, entry.Name()))
		res.Entries = append(res.Entries, outcome)
	}

	res.DirRemoveErr = os.Remove(s.dir)
	return res
}
