package oauthflow

import (
	"github.com/cortex-platform/console/internal/gateway"
	"time"
)

// Message types posted from the callback popup to its opener
const (
	MessageTypeSuccess = "oauth-success"
	MessageTypeError   = "oauth-error"
)

// Message is the structured payload posted to the opener window
type Message struct {
	Type     string           `json:"type"`
	Provider gateway.Provider `json:"provider,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Window represents the browser window the callback was delivered to.
// PostToOpener must only deliver to the opener's own origin.
type Window interface {
	// HasOpener reports whether the window was opened as a popup
	HasOpener() bool

	// PostToOpener posts a message to the opener window
	PostToOpener(message Message)

	// CloseAfter closes the window after the given delay
	CloseAfter(delay time.Duration)

	// NavigateAfter navigates the window to route after the given delay
	NavigateAfter(route string, delay time.Duration)
}
