// Package backend selects and constructs the kv store that persists
// application state.
package backend

import "fintrack/internal/kv"

// Type represents the kind of persistence backend.
type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
	FileBackend   Type = "file"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend, FileBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the constructed kv store and an optional cleanup.
type Result struct {
	KV      kv.Store
	Cleanup CleanupFunc
}
