package console

import (
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"net/http"
	"time"
)

const routeLogin = "/login"

// MiddlewareVerifySession makes sure that the requesting browser holds a valid admin session.
// Browsers without one are silently redirected to the login page.
// Additionally, it injects the session itself into the request context.
func (service *Service) MiddlewareVerifySession(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		current, ok := service.guard.Check(clientStore(request))
		if !ok {
			http.Redirect(writer, request, routeLogin, http.StatusSeeOther)
			return
		}
		next(writer, withSession(request, current))
	}
}

// logRequests logs every handled request using the global zerolog logger
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		wrapped := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Debug().
				Str("request_id", middleware.GetReqID(request.Context())).
				Str("method", request.Method).
				Str("path", request.URL.Path).
				Int("status", wrapped.Status()).
				Dur("duration", time.Since(start)).
				Msg("handled request")
		}()
		next.ServeHTTP(wrapped, request)
	})
}
