package session

import (
	"context"
	"errors"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestGuard() *Guard {
	return &Guard{Clock: func() time.Time { return testNow }}
}

func storeWithSession(token, expires string) *clientstore.Memory {
	store := clientstore.NewMemory()
	store.Set(clientstore.KeyAdminSessionToken, token)
	store.Set(clientstore.KeyAdminSessionExpires, expires)
	return store
}

func TestGuard_Check(t *testing.T) {
	guard := newTestGuard()

	t.Run("valid session", func(t *testing.T) {
		store := storeWithSession("tok", testNow.Add(time.Hour).Format(time.RFC3339))
		session, ok := guard.Check(store)
		require.True(t, ok)
		assert.Equal(t, "tok", session.Token)
	})

	t.Run("no session", func(t *testing.T) {
		_, ok := guard.Check(clientstore.NewMemory())
		assert.False(t, ok)
	})

	t.Run("expired session is removed", func(t *testing.T) {
		store := storeWithSession("anything", "2020-01-01T00:00:00Z")
		_, ok := guard.Check(store)
		assert.False(t, ok)
		assert.Zero(t, store.Size(), "both keys must be deleted")
	})

	t.Run("expiry equal to now is expired", func(t *testing.T) {
		store := storeWithSession("tok", testNow.Format(time.RFC3339))
		_, ok := guard.Check(store)
		assert.False(t, ok)
	})

	t.Run("unparseable expiry is removed", func(t *testing.T) {
		store := storeWithSession("tok", "tomorrow")
		_, ok := guard.Check(store)
		assert.False(t, ok)
		assert.Zero(t, store.Size())
	})

	t.Run("token without expiry is removed", func(t *testing.T) {
		store := clientstore.NewMemory()
		store.Set(clientstore.KeyAdminSessionToken, "tok")
		_, ok := guard.Check(store)
		assert.False(t, ok)
		assert.Zero(t, store.Size())
	})

	t.Run("empty token is invalid", func(t *testing.T) {
		store := storeWithSession("", testNow.Add(time.Hour).Format(time.RFC3339))
		_, ok := guard.Check(store)
		assert.False(t, ok)
	})
}

func TestGuard_ExpiredRegardlessOfToken(t *testing.T) {
	guard := newTestGuard()
	for _, token := range []string{"a", "valid-looking-token", "0000000000000000"} {
		for _, offset := range []time.Duration{-time.Nanosecond, -time.Minute, -24 * time.Hour, -10 * 365 * 24 * time.Hour} {
			store := storeWithSession(token, testNow.Add(offset).Format(time.RFC3339Nano))
			_, ok := guard.Check(store)
			assert.False(t, ok, "token %q with offset %s", token, offset)
		}
	}
}

func TestGuard_BeginRoundTrip(t *testing.T) {
	guard := newTestGuard()
	store := clientstore.NewMemory()

	guard.Begin(store, &Session{Token: "tok", ExpiresAt: testNow.Add(30 * time.Minute)})
	session, ok := guard.Check(store)
	require.True(t, ok)
	assert.True(t, session.ExpiresAt.Equal(testNow.Add(30*time.Minute)))
}

func TestGuard_LogoutIsIdempotent(t *testing.T) {
	guard := newTestGuard()

	withSession := storeWithSession("tok", testNow.Add(time.Hour).Format(time.RFC3339))
	withoutSession := clientstore.NewMemory()

	guard.Logout(withSession)
	guard.Logout(withoutSession)
	guard.Logout(withoutSession)

	assert.Zero(t, withSession.Size())
	assert.Zero(t, withoutSession.Size())
	_, ok := guard.Check(withSession)
	assert.False(t, ok)
}

type fakeStarter struct {
	session *gateway.AdminSession
	err     error
	pins    []string
}

func (starter *fakeStarter) StartAdminSession(_ context.Context, pin string) (*gateway.AdminSession, error) {
	starter.pins = append(starter.pins, pin)
	return starter.session, starter.err
}

func TestAuthenticator_Login(t *testing.T) {
	t.Run("stores the issued session", func(t *testing.T) {
		starter := &fakeStarter{session: &gateway.AdminSession{Token: "tok", ExpiresAt: testNow.Add(time.Hour)}}
		authenticator := &Authenticator{Backend: starter, Guard: newTestGuard()}
		store := clientstore.NewMemory()

		session, err := authenticator.Login(context.Background(), store, "1234")
		require.NoError(t, err)
		assert.Equal(t, "tok", session.Token)
		assert.Equal(t, []string{"1234"}, starter.pins)

		token, ok := store.Get(clientstore.KeyAdminSessionToken)
		assert.True(t, ok)
		assert.Equal(t, "tok", token)
	})

	t.Run("leaves the store untouched on failure", func(t *testing.T) {
		starter := &fakeStarter{err: errors.New("invalid credentials")}
		authenticator := &Authenticator{Backend: starter, Guard: newTestGuard()}
		store := clientstore.NewMemory()

		_, err := authenticator.Login(context.Background(), store, "0000")
		assert.Error(t, err)
		assert.Zero(t, store.Size())
	})
}
