package session

import (
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/gateway"
	"github.com/rs/zerolog/log"
	"time"
)

// Guard validates the admin session persisted in a client store
type Guard struct {
	// Clock returns the current time; defaults to time.Now
	Clock func() time.Time
}

func (guard *Guard) now() time.Time {
	if guard.Clock == nil {
		return time.Now()
	}
	return guard.Clock()
}

// Check reads the session out of the store and reports whether it is valid.
// Expired or unreadable sessions are removed from the store.
func (guard *Guard) Check(store clientstore.Store) (*Session, bool) {
	token, hasToken := store.Get(clientstore.KeyAdminSessionToken)
	rawExpiry, hasExpiry := store.Get(clientstore.KeyAdminSessionExpires)
	if !hasToken && !hasExpiry {
		return nil, false
	}
	if !hasToken || !hasExpiry {
		// Half a session is no session
		forget(store)
		return nil, false
	}

	expiresAt, err := gateway.ParseTimestamp(rawExpiry)
	if err != nil {
		log.Debug().Err(err).Msg("discarding admin session with an unreadable expiry")
		forget(store)
		return nil, false
	}

	session := &Session{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if !session.Valid(guard.now()) {
		forget(store)
		return nil, false
	}
	return session, true
}

// Begin persists a freshly issued session
func (guard *Guard) Begin(store clientstore.Store, session *Session) {
	store.Set(clientstore.KeyAdminSessionToken, session.Token)
	store.Set(clientstore.KeyAdminSessionExpires, session.ExpiresAt.UTC().Format(time.RFC3339Nano))
}

// Logout removes the session regardless of its validity.
// Logging out without a session is a no-op.
func (guard *Guard) Logout(store clientstore.Store) {
	forget(store)
}

func forget(store clientstore.Store) {
	store.Remove(clientstore.KeyAdminSessionToken)
	store.Remove(clientstore.KeyAdminSessionExpires)
}
