package oauthflow

import (
	"context"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/gateway"
)

// ConnectStarter requests provider authorization URLs from the backend
type ConnectStarter interface {
	StartConnect(ctx context.Context, provider gateway.Provider, tenantID string) (*gateway.ConnectStart, error)
}

// Starter begins OAuth connect flows
type Starter struct {
	Backend ConnectStarter
}

// Start stores the correlation token and returns the provider authorization URL the client has to visit.
// If the backend refuses to start the flow, the correlation token is removed again.
func (starter *Starter) Start(ctx context.Context, store clientstore.Store, provider gateway.Provider, tenantID string, popup bool) (string, error) {
	store.Set(clientstore.KeyOAuthTenantID, tenantID)
	if popup {
		store.Set(clientstore.KeyOAuthPopup, "1")
	} else {
		store.Remove(clientstore.KeyOAuthPopup)
	}

	start, err := starter.Backend.StartConnect(ctx, provider, tenantID)
	if err != nil {
		forgetCorrelation(store)
		return "", err
	}
	return start.AuthURL, nil
}

// IsPopup reports whether the pending flow of the store was started from a popup
func IsPopup(store clientstore.Store) bool {
	value, ok := store.Get(clientstore.KeyOAuthPopup)
	return ok && value == "1"
}
