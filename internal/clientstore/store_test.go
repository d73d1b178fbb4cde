package clientstore

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestMemory(t *testing.T) {
	store := NewMemory()

	_, ok := store.Get(KeyOAuthTenantID)
	assert.False(t, ok)

	store.Set(KeyOAuthTenantID, "tenant_9")
	value, ok := store.Get(KeyOAuthTenantID)
	assert.True(t, ok)
	assert.Equal(t, "tenant_9", value)
	assert.Equal(t, 1, store.Size())

	store.Remove(KeyOAuthTenantID)
	store.Remove(KeyOAuthTenantID)
	_, ok = store.Get(KeyOAuthTenantID)
	assert.False(t, ok)
}

// failingDriver simulates a disabled or full storage backend
type failingDriver struct {
	writes int
}

var errStorageFull = errors.New("storage full")

func (driver *failingDriver) Initialize(context.Context) error { return nil }
func (driver *failingDriver) Get(context.Context, string, string) (string, bool, error) {
	return "stale", true, errStorageFull
}
func (driver *failingDriver) Set(context.Context, string, string, string) error {
	driver.writes++
	return errStorageFull
}
func (driver *failingDriver) Remove(context.Context, string, string) error { return errStorageFull }
func (driver *failingDriver) RemoveExpired(context.Context, time.Time) (int, error) {
	return 0, errStorageFull
}
func (driver *failingDriver) Close() {}

func TestScopedTreatsFailuresAsAbsent(t *testing.T) {
	driver := &failingDriver{}
	store := Scoped(context.Background(), driver, "scope")

	assert.NotPanics(t, func() {
		store.Set(KeyAdminSessionToken, "token")
		store.Remove(KeyAdminSessionToken)
	})
	assert.Equal(t, 1, driver.writes)

	value, ok := store.Get(KeyAdminSessionToken)
	assert.False(t, ok)
	assert.Empty(t, value)
}
