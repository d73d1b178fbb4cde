package console

import (
	"github.com/cortex-platform/console/internal/api/schema"
	"github.com/cortex-platform/console/internal/api/validation"
	"github.com/cortex-platform/console/internal/gateway"
	"github.com/cortex-platform/console/internal/oauthflow"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"net/http"
)

const (
	queryTenantID = "tenantId"
	queryMode     = "mode"
	modePopup     = "popup"
)

// EndpointConnect handles the 'GET /connect/{provider}?tenantId={string}&mode={string?}' endpoint
func (service *Service) EndpointConnect(writer http.ResponseWriter, request *http.Request) {
	var validationErrs []*schema.Error

	provider, validationErr := validation.Provider("provider", chi.URLParam(request, "provider"))
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	tenantID, validationErr := validation.QueryString(request, queryTenantID, true, "")
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	popup := validation.QueryFlag(request, queryMode, modePopup)
	authURL, err := service.starter.Start(request.Context(), clientStore(request), provider, tenantID, popup)
	if err != nil {
		service.writeBackendFailure(writer, err, "Connect failed: ")
		return
	}

	log.Info().Str("provider", string(provider)).Str("tenant_id", tenantID).Bool("popup", popup).Msg("started OAuth connect flow")
	http.Redirect(writer, request, authURL, http.StatusFound)
}

// EndpointOAuthCallback handles the 'GET /oauth/callback?connectionId={string}&providerConfigKey={string}' endpoint
func (service *Service) EndpointOAuthCallback(writer http.ResponseWriter, request *http.Request) {
	store := clientStore(request)

	// The popup marker is part of the correlation and gets removed while resolving
	window := &pageWindow{opener: oauthflow.IsPopup(store)}
	state := service.resolver.Resolve(request.Context(), request.URL.Query(), store, window)
	service.renderCallback(writer, state, window)
}

// EndpointConnectionStatus handles the 'GET /connections/status?tenantId={string}' endpoint
func (service *Service) EndpointConnectionStatus(writer http.ResponseWriter, request *http.Request) {
	tenantID, validationErr := validation.QueryString(request, queryTenantID, true, "")
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	status, err := service.Backend.ConnectionStatus(request.Context(), tenantID)
	if err != nil {
		service.writeBackendFailure(writer, err, "")
		return
	}
	service.writer.WriteJSON(writer, status)
}

// EndpointConnectionSync handles the 'POST /connections/sync/{provider}?tenantId={string}' endpoint
func (service *Service) EndpointConnectionSync(writer http.ResponseWriter, request *http.Request) {
	var validationErrs []*schema.Error

	rawProvider := chi.URLParam(request, "provider")
	provider, validationErr := validation.Provider("provider", rawProvider)
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	tenantID, validationErr := validation.QueryString(request, queryTenantID, true, "")
	if validationErr != nil {
		validationErrs = append(validationErrs, validationErr)
	}

	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}
	if provider != gateway.ProviderGmail && provider != gateway.ProviderOutlook {
		service.writer.WriteErrors(writer, http.StatusBadRequest, schema.ErrUnsupportedProvider(rawProvider))
		return
	}

	if !service.tenantSyncs.TryAcquire(tenantID, provider) {
		service.writer.WriteErrors(writer, http.StatusConflict, schema.ErrSyncInProgress)
		return
	}
	defer service.tenantSyncs.Release(tenantID, provider)

	if err := service.Backend.SyncOnce(request.Context(), provider, tenantID); err != nil {
		service.writeBackendFailure(writer, err, "Sync failed: ")
		return
	}
	service.writer.WriteJSON(writer, map[string]any{
		"message":   "Sync completed",
		"tenant_id": tenantID,
		"provider":  provider,
	})
}
