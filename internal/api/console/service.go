package console

import (
	"github.com/cortex-platform/console/internal/api/schema"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/config"
	"github.com/cortex-platform/console/internal/function"
	"github.com/cortex-platform/console/internal/gateway"
	"github.com/cortex-platform/console/internal/inflight"
	"github.com/cortex-platform/console/internal/oauthflow"
	"github.com/cortex-platform/console/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"html/template"
	"net/http"
	"time"
)

// Service represents the console HTTP service
type Service struct {
	server *http.Server

	Config  *config.Config
	Backend *gateway.Client
	Store   clientstore.Driver

	// Clock is used to validate admin sessions; defaults to time.Now
	Clock func() time.Time

	writer        *schema.Writer
	guard         *session.Guard
	authenticator *session.Authenticator
	starter       *oauthflow.Starter
	resolver      *oauthflow.Resolver
	syncs         *inflight.Tracker
	tenantSyncs   *inflight.Tracker
	pages         *template.Template
}

// Startup starts up the console HTTP service
func (service *Service) Startup() error {
	handler, err := service.Handler()
	if err != nil {
		return err
	}

	// Start up the server
	server := &http.Server{
		Addr:    service.Config.ListenAddress,
		Handler: handler,
	}
	service.server = server
	return server.ListenAndServe()
}

// Shutdown shuts down the console HTTP service
func (service *Service) Shutdown() {
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}

// Handler wires up the console components and returns the HTTP handler serving every console route
func (service *Service) Handler() (http.Handler, error) {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the console experienced an unexpected error")
		},
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	service.pages = pages

	// Create the session & OAuth components
	service.guard = &session.Guard{Clock: service.Clock}
	service.authenticator = &session.Authenticator{
		Backend: service.Backend,
		Guard:   service.guard,
	}
	service.starter = &oauthflow.Starter{Backend: service.Backend}
	service.resolver = oauthflow.NewResolver(service.Backend)
	if service.Config.CallbackSteadyRoute != "" {
		service.resolver.SteadyRoute = service.Config.CallbackSteadyRoute
	}
	service.syncs = inflight.NewTracker()
	service.tenantSyncs = inflight.NewTracker()

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(logRequests)
	router.Use(middleware.RedirectSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{service.Config.AllowedOrigin},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	service.registerEndpoints(router)
	return router, nil
}

func (service *Service) registerEndpoints(router chi.Router) {
	router.Get("/healthz", service.EndpointLiveness)

	// Register the admin login endpoints
	router.Get("/login", function.Nest[http.HandlerFunc](service.EndpointLoginPage, service.MiddlewareClientStore))
	router.Post("/login", function.Nest[http.HandlerFunc](service.EndpointLogin, service.MiddlewareClientStore))
	router.Post("/logout", function.Nest[http.HandlerFunc](service.EndpointLogout, service.MiddlewareClientStore))

	// Register the admin endpoints
	admin := func(end http.HandlerFunc) http.HandlerFunc {
		return function.Nest[http.HandlerFunc](end, service.MiddlewareClientStore, service.MiddlewareVerifySession)
	}
	router.Get("/admin", admin(service.EndpointAdminOverview))
	router.Get("/admin/connectors/users", admin(service.EndpointConnectorUsers))
	router.Post("/admin/connectors/sync", admin(service.EndpointConnectorSync))
	router.Get("/admin/health", admin(service.EndpointHealth))
	router.Post("/admin/health/test-flow", admin(service.EndpointTestFlow))

	// Register the OAuth connect & connection endpoints
	router.Get("/connect/{provider}", function.Nest[http.HandlerFunc](service.EndpointConnect, service.MiddlewareClientStore))
	router.Get("/oauth/callback", function.Nest[http.HandlerFunc](service.EndpointOAuthCallback, service.MiddlewareClientStore))
	router.Get("/connections/status", service.EndpointConnectionStatus)
	router.Post("/connections/sync/{provider}", service.EndpointConnectionSync)
}

// EndpointLiveness handles the 'GET /healthz' endpoint
func (service *Service) EndpointLiveness(writer http.ResponseWriter, _ *http.Request) {
	service.writer.WriteJSON(writer, map[string]string{"status": "ok"})
}
