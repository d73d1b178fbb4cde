package inflight

import (
	"github.com/cortex-platform/console/internal/gateway"
	"github.com/cortex-platform/console/internal/hashmap"
	"sort"
)

// Pair identifies a single manual sync: one provider of one connector user
type Pair struct {
	UserID   string
	Provider gateway.Provider
}

// Tracker keeps track of the manual syncs currently in flight.
// At most one sync per pair may run at a time; different pairs never block each other.
type Tracker struct {
	pairs hashmap.Map[Pair, struct{}]
}

// NewTracker creates a new empty in-flight tracker
func NewTracker() *Tracker {
	return &Tracker{
		pairs: hashmap.NewNormal[Pair, struct{}](),
	}
}

// TryAcquire marks the given pair as in flight.
// It returns false if a sync for the same pair is already running.
func (tracker *Tracker) TryAcquire(userID string, provider gateway.Provider) bool {
	pair := Pair{UserID: userID, Provider: provider}
	acquired := false
	tracker.pairs.BootstrappedManipulation(func(raw map[Pair]struct{}) {
		if _, ok := raw[pair]; ok {
			return
		}
		raw[pair] = struct{}{}
		acquired = true
	})
	return acquired
}

// Release marks the given pair as idle again
func (tracker *Tracker) Release(userID string, provider gateway.Provider) {
	tracker.pairs.Unset(Pair{UserID: userID, Provider: provider})
}

// InFlight returns the providers currently syncing for the given user, sorted by name
func (tracker *Tracker) InFlight(userID string) []gateway.Provider {
	providers := make([]gateway.Provider, 0)
	tracker.pairs.BootstrappedManipulation(func(raw map[Pair]struct{}) {
		for pair := range raw {
			if pair.UserID == userID {
				providers = append(providers, pair.Provider)
			}
		}
	})
	sort.Slice(providers, func(i, j int) bool { return providers[i] < providers[j] })
	return providers
}

// Size returns the amount of syncs in flight
func (tracker *Tracker) Size() int {
	return tracker.pairs.Size()
}
