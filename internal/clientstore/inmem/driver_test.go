package inmem

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

const (
	testScopeA = "scope-a"
	testScopeB = "scope-b"
	testKey    = "oauth_tenant_id"
)

func TestDriver_SetGetRemove(t *testing.T) {
	driver, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := driver.Get(ctx, testScopeA, testKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, driver.Set(ctx, testScopeA, testKey, "tenant_9"))
	value, ok, err := driver.Get(ctx, testScopeA, testKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tenant_9", value)

	require.NoError(t, driver.Set(ctx, testScopeA, testKey, "tenant_10"))
	value, _, err = driver.Get(ctx, testScopeA, testKey)
	require.NoError(t, err)
	assert.Equal(t, "tenant_10", value, "second write replaces the first")

	require.NoError(t, driver.Remove(ctx, testScopeA, testKey))
	_, ok, err = driver.Get(ctx, testScopeA, testKey)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, driver.Remove(ctx, testScopeA, testKey), "removing an absent key is not an error")
}

func TestDriver_ScopesAreIsolated(t *testing.T) {
	driver, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, driver.Set(ctx, testScopeA, testKey, "a"))
	require.NoError(t, driver.Set(ctx, testScopeB, testKey, "b"))

	value, _, err := driver.Get(ctx, testScopeA, testKey)
	require.NoError(t, err)
	assert.Equal(t, "a", value)

	require.NoError(t, driver.Remove(ctx, testScopeA, testKey))

	value, ok, err := driver.Get(ctx, testScopeB, testKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", value)
}

func TestDriver_RemoveExpired(t *testing.T) {
	driver, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	driver.now = func() time.Time { return base }
	require.NoError(t, driver.Set(ctx, testScopeA, "old", "1"))
	driver.now = func() time.Time { return base.Add(time.Hour) }
	require.NoError(t, driver.Set(ctx, testScopeA, "new", "2"))

	n, err := driver.RemoveExpired(ctx, base.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok, err := driver.Get(ctx, testScopeA, "old")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = driver.Get(ctx, testScopeA, "new")
	require.NoError(t, err)
	assert.True(t, ok)
}
