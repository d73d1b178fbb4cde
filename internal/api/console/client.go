package console

import (
	"context"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/secret"
	"github.com/rs/zerolog/log"
	"net/http"
)

const (
	cookieNameClient   = "cortex_client"
	clientSecretLength = 32
)

// MiddlewareClientStore identifies the requesting browser by its client cookie (issuing a new one if necessary) and
// injects the browser's persisted client store into the request context
func (service *Service) MiddlewareClientStore(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		scope := ""
		if cookie, err := request.Cookie(cookieNameClient); err == nil {
			fingerprint, err := secret.Fingerprint(cookie.Value, clientSecretLength)
			if err != nil {
				log.Debug().Err(err).Msg("discarding malformed client cookie")
			} else {
				scope = fingerprint
			}
		}

		if scope == "" {
			raw, fingerprint := secret.MustNew(clientSecretLength)
			scope = fingerprint
			// Lax so that the cookie is sent along the provider's top-level redirect to the OAuth callback
			http.SetCookie(writer, &http.Cookie{
				Name:     cookieNameClient,
				Value:    raw,
				Path:     "/",
				MaxAge:   int(service.Config.StoreEntryLifetime.Seconds()),
				Secure:   service.Config.SecureCookies,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		// Store writes must outlive the request: a browser navigating away must not leave stale correlation behind
		store := clientstore.Scoped(context.WithoutCancel(request.Context()), service.Store, scope)
		next(writer, withClientStore(request, store))
	}
}
