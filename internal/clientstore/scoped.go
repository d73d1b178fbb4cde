package clientstore

import (
	"context"
	"github.com/rs/zerolog/log"
)

// scopedStore binds a Driver to a single client scope
type scopedStore struct {
	ctx    context.Context
	driver Driver
	scope  string
}

// Scoped returns a Store reading and writing the values of a single client scope.
// Driver failures are logged and treated as absent values or no-ops.
func Scoped(ctx context.Context, driver Driver, scope string) Store {
	return &scopedStore{
		ctx:    ctx,
		driver: driver,
		scope:  scope,
	}
}

// Get retrieves the value stored under key
func (store *scopedStore) Get(key string) (string, bool) {
	value, ok, err := store.driver.Get(store.ctx, store.scope, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not read from the client store")
		return "", false
	}
	return value, ok
}

// Set stores value under key
func (store *scopedStore) Set(key, value string) {
	if err := store.driver.Set(store.ctx, store.scope, key, value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not write to the client store")
	}
}

// Remove deletes the value stored under key
func (store *scopedStore) Remove(key string) {
	if err := store.driver.Remove(store.ctx, store.scope, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not remove from the client store")
	}
}
