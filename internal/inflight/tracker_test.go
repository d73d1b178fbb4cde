package inflight

import (
	"github.com/cortex-platform/console/internal/gateway"
	"github.com/stretchr/testify/assert"
	"sync"
	"sync/atomic"
	"testing"
)

func TestTracker_SamePairIsExclusive(t *testing.T) {
	tracker := NewTracker()

	assert.True(t, tracker.TryAcquire("user-1", gateway.ProviderGmail))
	assert.False(t, tracker.TryAcquire("user-1", gateway.ProviderGmail))
	assert.Equal(t, []gateway.Provider{gateway.ProviderGmail}, tracker.InFlight("user-1"))

	tracker.Release("user-1", gateway.ProviderGmail)
	assert.Empty(t, tracker.InFlight("user-1"))
	assert.True(t, tracker.TryAcquire("user-1", gateway.ProviderGmail))
}

func TestTracker_DifferentPairsDoNotBlock(t *testing.T) {
	tracker := NewTracker()

	assert.True(t, tracker.TryAcquire("user-1", gateway.ProviderGmail))
	assert.True(t, tracker.TryAcquire("user-1", gateway.ProviderOutlook))
	assert.True(t, tracker.TryAcquire("user-2", gateway.ProviderGmail))
	assert.Equal(t, 3, tracker.Size())

	assert.Equal(t, []gateway.Provider{gateway.ProviderGmail, gateway.ProviderOutlook}, tracker.InFlight("user-1"))
	assert.Equal(t, []gateway.Provider{gateway.ProviderGmail}, tracker.InFlight("user-2"))
	assert.Empty(t, tracker.InFlight("user-3"))
}

func TestTracker_ConcurrentAcquire(t *testing.T) {
	tracker := NewTracker()

	var acquired atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tracker.TryAcquire("user-1", gateway.ProviderOutlook) {
				acquired.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), acquired.Load())
}

func TestTracker_ReleaseUnknownPair(t *testing.T) {
	tracker := NewTracker()
	tracker.Release("nobody", gateway.ProviderGmail)
	assert.Zero(t, tracker.Size())
}
