// Package kv defines the durable key-value collaborator the expense
// store persists through, and its backends.
package kv

import "context"

// Keys used by the application. The expense key holds a JSON array of
// expense records; the theme key holds a bare string literal.
const (
	KeyExpenses = "expenses"
	KeyTheme    = "theme"
)

// Store is the persistence port. Callers serialize access; backends only
// need to be safe for use from one goroutine at a time.
type Store interface {
	// Get returns the value stored under key. found is false when the
	// key has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	Close() error
}
