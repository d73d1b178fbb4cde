package console

import (
	"errors"
	"github.com/cortex-platform/console/internal/api/schema"
	"github.com/cortex-platform/console/internal/gateway"
	"net/http"
)

// writeBackendFailure answers a request whose backend call failed.
// prefix is prepended to the user-facing message, i.e. "Sync failed: ".
func (service *Service) writeBackendFailure(writer http.ResponseWriter, err error, prefix string) {
	var backendErr *gateway.BackendError
	switch {
	case errors.Is(err, gateway.ErrNoSession):
		service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
	case errors.Is(err, gateway.ErrUnreachable):
		service.writer.WriteErrors(writer, http.StatusBadGateway, &schema.Error{
			Type:    schema.ErrBackendUnreachable.Type,
			Message: prefix + gateway.Detail(err),
		})
	case errors.As(err, &backendErr):
		service.writer.WriteErrors(writer, schema.StatusFor(backendErr.Status),
			schema.ErrBackendRejected(prefix+backendErr.Detail, backendErr.Status, backendErr.Detail))
	default:
		service.writer.WriteInternalError(writer, err)
	}
}
