package oauthflow

import "github.com/cortex-platform/console/internal/gateway"

// State represents the terminal state of a callback resolution.
// The only implementations are Succeeded and Failed; a resolution is processing for as long as Resolver.Resolve runs.
type State interface {
	isState()
}

// Succeeded is reached once the backend accepted the connection.
// It can only be created by a Resolver after a successful finalize call.
type Succeeded struct {
	connection gateway.Connection
	provider   gateway.Provider
}

func (Succeeded) isState() {}

// Connection returns the finalized connection
func (state Succeeded) Connection() gateway.Connection {
	return state.connection
}

// Provider returns the provider derived from the connection's config key
func (state Succeeded) Provider() gateway.Provider {
	return state.provider
}

// Reason classifies why a callback resolution failed
type Reason string

const (
	// ReasonMissingCorrelation means no correlation token was stored; the flow must be restarted
	ReasonMissingCorrelation Reason = "missing_correlation"

	// ReasonMalformedRedirect means the provider redirect lacked required parameters
	ReasonMalformedRedirect Reason = "malformed_redirect"

	// ReasonBackendRejected means the backend refused to finalize the connection
	ReasonBackendRejected Reason = "backend_rejected"

	// ReasonTransport means the backend could not be reached
	ReasonTransport Reason = "transport"
)

// Retryable reports whether retrying the finalize call itself can succeed.
// Correlation failures require restarting the whole connect flow.
func (reason Reason) Retryable() bool {
	return reason == ReasonBackendRejected || reason == ReasonTransport
}

// Failed is reached whenever the callback could not be finalized
type Failed struct {
	Reason Reason
	Detail string
}

func (Failed) isState() {}

// Message returns the user-facing failure message
func (state Failed) Message() string {
	switch state.Reason {
	case ReasonMissingCorrelation:
		return "missing correlation — restart the flow"
	case ReasonMalformedRedirect:
		return "malformed redirect from provider"
	default:
		return state.Detail
	}
}
