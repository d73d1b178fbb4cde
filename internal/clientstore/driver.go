package clientstore

import (
	"context"
	"time"
)

// Entry represents a single value persisted for a client scope
type Entry struct {
	Scope     string
	Key       string
	Value     string
	UpdatedAt int64
}

// Driver represents a persistence backend holding the stores of all clients
type Driver interface {
	// Initialize initializes the driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// Get retrieves the value stored under key inside scope.
	// The boolean is false if no value is present.
	Get(ctx context.Context, scope, key string) (string, bool, error)

	// Set stores value under key inside scope
	Set(ctx context.Context, scope, key, value string) error

	// Remove deletes the value stored under key inside scope
	Remove(ctx context.Context, scope, key string) error

	// RemoveExpired deletes every entry that was last written before the given time
	RemoveExpired(ctx context.Context, before time.Time) (int, error)

	// Close closes the driver (i.e. closes a database connection)
	Close()
}
