// Package storage provides the on-disk thumbnail cache and an optional
// object-storage mirror. It defines the Store and Mirror ports and their
// local disk and S3 implementations.
package storage

import "context"

// EntryExt is the file extension of every cache entry.
const EntryExt = ".jpg"

// Store defines the interface for the flat thumbnail cache directory.
// Entries are named <key>.jpg; there are no subdirectories or sidecar files.
type Store interface {
	// Dir returns the cache directory.
	Dir() string

	// EnsureDir creates the cache directory if it does not exist.
	EnsureDir() error

	// Path returns the file path of the entry for key.
	Path(key string) string

	// Exists reports whether the entry for key is present.
	Exists(key string) bool

	// Read returns the bytes of the entry for key. The boolean is false,
	// with a nil error, when the entry does not exist.
	Read(key string) ([]byte, bool, error)

	// Clear removes every entry and then the directory itself. It never
	// fails; per-entry problems are reported in the result.
	Clear() ClearResult
}

// Mirror publishes cache entries to remote storage.
type Mirror interface {
	// Mirror uploads data as the entry for key and returns its URL.
	Mirror(ctx context.Context, key string, data []byte) (url string, err error)
}
