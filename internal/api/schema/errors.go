package schema

import (
	"fmt"
	"net/http"
)

var emptyMap = map[string]any{}

var (
	ErrInternal = &Error{
		Type:    "generic.internal",
		Message: "An internal error occurred.",
		Details: emptyMap,
	}
	ErrNotFound = &Error{
		Type:    "generic.notFound",
		Message: "Resource not found.",
		Details: emptyMap,
	}
	ErrMethodNotAllowed = &Error{
		Type:    "generic.methodNotAllowed",
		Message: "Method not allowed.",
		Details: emptyMap,
	}
	ErrUnauthorized = &Error{
		Type:    "access.unauthorized",
		Message: "Unauthorized",
		Details: emptyMap,
	}
	ErrInvalidCredentials = &Error{
		Type:    "access.invalidCredentials",
		Message: "The provided PIN was rejected.",
		Details: emptyMap,
	}
	ErrBackendUnreachable = &Error{
		Type:    "backend.unreachable",
		Message: "The backend could not be reached.",
		Details: emptyMap,
	}
	ErrSyncInProgress = &Error{
		Type:    "sync.inProgress",
		Message: "Sync already in progress",
		Details: emptyMap,
	}
)

// ErrBackendRejected creates an error describing a non-2xx answer of the backend.
// message is shown to the user as is; it usually carries the backend's detail.
func ErrBackendRejected(message string, status int, detail string) *Error {
	return &Error{
		Type:    "backend.rejected",
		Message: message,
		Details: map[string]any{
			"status": status,
			"detail": detail,
		},
	}
}

// ErrUnsupportedProvider creates an error describing a provider the requested operation does not support
func ErrUnsupportedProvider(provider string) *Error {
	return &Error{
		Type:    "validation.provider.unsupported",
		Message: fmt.Sprintf("The provider '%s' is not supported by this operation.", provider),
		Details: map[string]any{
			"provider": provider,
		},
	}
}

// ErrorResponse represents the response structure sent by the console whenever errors occurred
type ErrorResponse struct {
	Status int      `json:"status"`
	Errors []*Error `json:"errors"`
}

// Error represents a single error present in the ErrorResponse
type Error struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// Error implements the error interface so that an Error can travel through regular error returns
func (err *Error) Error() string {
	return err.Message
}

// StatusFor maps a backend status code to the status the console answers with.
// Client errors are passed through, everything else becomes 502 Bad Gateway.
func StatusFor(backendStatus int) int {
	if backendStatus >= 400 && backendStatus < 500 {
		return backendStatus
	}
	return http.StatusBadGateway
}
