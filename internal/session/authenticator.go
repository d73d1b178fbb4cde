package session

import (
	"context"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/gateway"
)

// SessionStarter starts admin sessions at the backend
type SessionStarter interface {
	StartAdminSession(ctx context.Context, pin string) (*gateway.AdminSession, error)
}

// Authenticator performs the admin login and persists the resulting session
type Authenticator struct {
	Backend SessionStarter
	Guard   *Guard
}

// Login exchanges the PIN for a session and stores it.
// On failure the store is left untouched.
func (authenticator *Authenticator) Login(ctx context.Context, store clientstore.Store, pin string) (*Session, error) {
	issued, err := authenticator.Backend.StartAdminSession(ctx, pin)
	if err != nil {
		return nil, err
	}
	session := &Session{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}
	authenticator.Guard.Begin(store, session)
	return session, nil
}
