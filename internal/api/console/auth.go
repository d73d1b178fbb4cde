package console

import (
	"errors"
	"github.com/cortex-platform/console/internal/api/schema"
	"github.com/cortex-platform/console/internal/gateway"
	"mime"
	"net/http"
)

const routeAdmin = "/admin"

type loginRequest struct {
	Pin *string `json:"pin" required:"true"`
}

// EndpointLoginPage handles the 'GET /login' endpoint
func (service *Service) EndpointLoginPage(writer http.ResponseWriter, request *http.Request) {
	if _, ok := service.guard.Check(clientStore(request)); ok {
		http.Redirect(writer, request, routeAdmin, http.StatusSeeOther)
		return
	}
	service.renderLogin(writer, http.StatusOK, "")
}

// EndpointLogin handles the 'POST /login' endpoint
func (service *Service) EndpointLogin(writer http.ResponseWriter, request *http.Request) {
	form := isFormPost(request)

	body, validationErrs, err := schema.UnmarshalBody[loginRequest](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		if form {
			service.renderLogin(writer, http.StatusBadRequest, "Please enter your PIN.")
			return
		}
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	_, err = service.authenticator.Login(request.Context(), clientStore(request), *body.Pin)
	if err != nil {
		if form {
			status := http.StatusBadGateway
			if errors.Is(err, gateway.ErrInvalidCredentials) {
				status = http.StatusUnauthorized
			}
			service.renderLogin(writer, status, gateway.Detail(err))
			return
		}
		if errors.Is(err, gateway.ErrInvalidCredentials) {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, &schema.Error{
				Type:    schema.ErrInvalidCredentials.Type,
				Message: schema.ErrInvalidCredentials.Message,
				Details: map[string]any{"detail": gateway.Detail(err)},
			})
			return
		}
		service.writeBackendFailure(writer, err, "Login failed: ")
		return
	}

	http.Redirect(writer, request, routeAdmin, http.StatusSeeOther)
}

// EndpointLogout handles the 'POST /logout' endpoint
func (service *Service) EndpointLogout(writer http.ResponseWriter, request *http.Request) {
	service.guard.Logout(clientStore(request))
	http.Redirect(writer, request, routeLogin, http.StatusSeeOther)
}

func isFormPost(request *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get("Content-Type"))
	return mediaType == "application/x-www-form-urlencoded"
}
