package oauthflow

import (
	"context"
	"errors"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/gateway"
	"github.com/rs/zerolog/log"
	"net/url"
	"time"
)

const (
	// DefaultPopupCloseDelay lets the opener react before the popup disappears
	DefaultPopupCloseDelay = 1500 * time.Millisecond

	// DefaultNavigateDelay leaves the user time to read the terminal message
	DefaultNavigateDelay = 3 * time.Second

	// DefaultSteadyRoute is where full-page callbacks navigate to
	DefaultSteadyRoute = "/connections"
)

// Query parameters of the provider redirect
const (
	ParamConnectionID      = "connectionId"
	ParamProviderConfigKey = "providerConfigKey"
)

// Finalizer finalizes OAuth connections at the backend
type Finalizer interface {
	FinalizeOAuthConnection(ctx context.Context, connection gateway.Connection) error
}

// Resolver resolves OAuth provider redirects into terminal states
type Resolver struct {
	Finalizer Finalizer

	PopupCloseDelay time.Duration
	NavigateDelay   time.Duration
	SteadyRoute     string
}

// NewResolver creates a new resolver using the default delays and steady route
func NewResolver(finalizer Finalizer) *Resolver {
	return &Resolver{
		Finalizer:       finalizer,
		PopupCloseDelay: DefaultPopupCloseDelay,
		NavigateDelay:   DefaultNavigateDelay,
		SteadyRoute:     DefaultSteadyRoute,
	}
}

// Resolve processes a single provider redirect.
// The correlation token is validated before the backend is called and removed only after the call resolved.
// The returned state is always terminal and its side effects have been applied to window.
func (resolver *Resolver) Resolve(ctx context.Context, query url.Values, store clientstore.Store, window Window) State {
	state := resolver.transition(ctx, query, store)
	resolver.report(state, window)
	return state
}

func (resolver *Resolver) transition(ctx context.Context, query url.Values, store clientstore.Store) State {
	connectionID := query.Get(ParamConnectionID)
	configKey := query.Get(ParamProviderConfigKey)

	tenantID, ok := store.Get(clientstore.KeyOAuthTenantID)
	if !ok || tenantID == "" {
		log.Info().Msg("OAuth callback without a correlation token")
		forgetCorrelation(store)
		return Failed{Reason: ReasonMissingCorrelation}
	}

	if connectionID == "" || configKey == "" {
		log.Info().Str("tenant_id", tenantID).Msg("OAuth callback with a malformed provider redirect")
		forgetCorrelation(store)
		return Failed{Reason: ReasonMalformedRedirect}
	}

	connection := gateway.Connection{
		TenantID:          tenantID,
		ProviderConfigKey: configKey,
		ConnectionID:      connectionID,
	}
	err := resolver.Finalizer.FinalizeOAuthConnection(ctx, connection)
	forgetCorrelation(store)
	if err != nil {
		log.Warn().Err(err).Str("tenant_id", tenantID).Str("provider_config_key", configKey).Msg("could not finalize the OAuth connection")
		reason := ReasonBackendRejected
		if errors.Is(err, gateway.ErrUnreachable) {
			reason = ReasonTransport
		}
		return Failed{Reason: reason, Detail: gateway.Detail(err)}
	}

	log.Info().Str("tenant_id", tenantID).Str("provider_config_key", configKey).Msg("finalized OAuth connection")
	return Succeeded{
		connection: connection,
		provider:   ProviderForConfigKey(configKey),
	}
}

func (resolver *Resolver) report(state State, window Window) {
	if !window.HasOpener() {
		window.NavigateAfter(resolver.SteadyRoute, resolver.NavigateDelay)
		return
	}

	switch state := state.(type) {
	case Succeeded:
		window.PostToOpener(Message{Type: MessageTypeSuccess, Provider: state.Provider()})
	case Failed:
		window.PostToOpener(Message{Type: MessageTypeError, Error: state.Message()})
	}
	window.CloseAfter(resolver.PopupCloseDelay)
}

// forgetCorrelation removes every transient value of an OAuth flow so a new attempt can start cleanly
func forgetCorrelation(store clientstore.Store) {
	store.Remove(clientstore.KeyOAuthTenantID)
	store.Remove(clientstore.KeyOAuthPopup)
}
