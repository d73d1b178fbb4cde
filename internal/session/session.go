package session

import (
	"time"
)

// Session represents the privileged admin session held by a client.
// Validity is decided purely from the locally stored expiry; the backend is not consulted.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Valid reports whether the session has a token and expires strictly after now
func (session *Session) Valid(now time.Time) bool {
	return session != nil && session.Token != "" && !session.ExpiresAt.IsZero() && session.ExpiresAt.After(now)
}
