package console

import (
	"github.com/cortex-platform/console/internal/api/schema"
	"github.com/cortex-platform/console/internal/api/validation"
	"github.com/cortex-platform/console/internal/gateway"
	"golang.org/x/sync/errgroup"
	"net/http"
)

type connectorUser struct {
	*gateway.ConnectorUser
	Syncing []gateway.Provider `json:"syncing"`
}

type adminOverview struct {
	Health *gateway.HealthSnapshot `json:"health"`
	Users  []*connectorUser        `json:"users"`
}

type connectorSyncRequest struct {
	UserID   *string `json:"user_id" required:"true"`
	Provider *string `json:"provider" required:"true"`
}

// EndpointAdminOverview handles the 'GET /admin' endpoint
func (service *Service) EndpointAdminOverview(writer http.ResponseWriter, request *http.Request) {
	token := currentSession(request).Token

	var health *gateway.HealthSnapshot
	var users []*gateway.ConnectorUser
	group, ctx := errgroup.WithContext(request.Context())
	group.Go(func() error {
		var err error
		health, err = service.Backend.FetchHealth(ctx, token)
		return err
	})
	group.Go(func() error {
		var err error
		users, err = service.Backend.FetchConnectorUsers(ctx, token)
		return err
	})
	if err := group.Wait(); err != nil {
		service.writeBackendFailure(writer, err, "")
		return
	}

	service.writer.WriteJSON(writer, &adminOverview{
		Health: health,
		Users:  service.withSyncing(users),
	})
}

// EndpointConnectorUsers handles the 'GET /admin/connectors/users' endpoint
func (service *Service) EndpointConnectorUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := service.Backend.FetchConnectorUsers(request.Context(), currentSession(request).Token)
	if err != nil {
		service.writeBackendFailure(writer, err, "")
		return
	}
	service.writer.WriteJSON(writer, service.withSyncing(users))
}

// EndpointConnectorSync handles the 'POST /admin/connectors/sync' endpoint
func (service *Service) EndpointConnectorSync(writer http.ResponseWriter, request *http.Request) {
	body, validationErrs, err := schema.UnmarshalBody[connectorSyncRequest](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}
	provider, validationErr := validation.Provider("provider", *body.Provider)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}
	userID := *body.UserID

	// Only one sync per user and provider may be pending at a time
	if !service.syncs.TryAcquire(userID, provider) {
		service.writer.WriteErrors(writer, http.StatusConflict, schema.ErrSyncInProgress)
		return
	}
	defer service.syncs.Release(userID, provider)

	if err := service.Backend.TriggerConnectorSync(request.Context(), currentSession(request).Token, userID, provider); err != nil {
		service.writeBackendFailure(writer, err, "Sync failed: ")
		return
	}
	service.writer.WriteJSONCode(writer, http.StatusAccepted, map[string]any{
		"message":  "Sync triggered",
		"user_id":  userID,
		"provider": provider,
	})
}

// EndpointHealth handles the 'GET /admin/health' endpoint
func (service *Service) EndpointHealth(writer http.ResponseWriter, request *http.Request) {
	health, err := service.Backend.FetchHealth(request.Context(), currentSession(request).Token)
	if err != nil {
		service.writeBackendFailure(writer, err, "")
		return
	}
	service.writer.WriteJSON(writer, health)
}

// EndpointTestFlow handles the 'POST /admin/health/test-flow' endpoint
func (service *Service) EndpointTestFlow(writer http.ResponseWriter, request *http.Request) {
	result, err := service.Backend.RunTestFlow(request.Context(), currentSession(request).Token)
	if err != nil {
		service.writeBackendFailure(writer, err, "Test flow failed: ")
		return
	}
	service.writer.WriteJSON(writer, result)
}

func (service *Service) withSyncing(users []*gateway.ConnectorUser) []*connectorUser {
	views := make([]*connectorUser, 0, len(users))
	for _, user := range users {
		views = append(views, &connectorUser{
			ConnectorUser: user,
			Syncing:       service.syncs.InFlight(user.UserID),
		})
	}
	return views
}
