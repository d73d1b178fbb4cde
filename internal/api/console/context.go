package console

import (
	"context"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/session"
	"net/http"
)

type contextKey int

const (
	contextKeyStore contextKey = iota
	contextKeySession
)

func withClientStore(request *http.Request, store clientstore.Store) *http.Request {
	return request.WithContext(context.WithValue(request.Context(), contextKeyStore, store))
}

// clientStore returns the client store injected by MiddlewareClientStore
func clientStore(request *http.Request) clientstore.Store {
	return request.Context().Value(contextKeyStore).(clientstore.Store)
}

func withSession(request *http.Request, current *session.Session) *http.Request {
	return request.WithContext(context.WithValue(request.Context(), contextKeySession, current))
}

// currentSession returns the admin session injected by MiddlewareVerifySession
func currentSession(request *http.Request) *session.Session {
	return request.Context().Value(contextKeySession).(*session.Session)
}
