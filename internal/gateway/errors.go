package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when the backend rejects an admin login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingCorrelation is returned when an OAuth connection is finalized without its full correlation triple
	ErrMissingCorrelation = errors.New("missing correlation")

	// ErrNoSession is returned when an admin-scoped call is made without a session token
	ErrNoSession = errors.New("admin call without a session token")

	// ErrUnreachable is returned when the backend could not be reached at all
	ErrUnreachable = errors.New("backend unreachable")

	// ErrUnsupportedProvider is returned when an operation does not support the requested provider
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// BackendError represents a non-2xx response of the backend
type BackendError struct {
	Operation string
	Status    int
	Detail    string

	kind error
}

func (err *BackendError) Error() string {
	return fmt.Sprintf("%s: backend responded with status %d: %s", err.Operation, err.Status, err.Detail)
}

// Unwrap exposes the classified failure (i.e. ErrInvalidCredentials) if there is one
func (err *BackendError) Unwrap() error {
	return err.kind
}

// Detail extracts the user-facing detail of an error.
// Backend rejections yield their verbatim detail, transport failures a generic message.
func Detail(err error) string {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Detail
	}
	if errors.Is(err, ErrUnreachable) {
		return "the backend could not be reached"
	}
	return err.Error()
}

func newBackendError(operation string, status int, body []byte) *BackendError {
	return &BackendError{
		Operation: operation,
		Status:    status,
		Detail:    parseDetail(status, body),
	}
}

// parseDetail extracts the 'detail' field out of an error response body
func parseDetail(status int, body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 && string(payload.Detail) != "null" {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil {
			return detail
		}
		return string(payload.Detail)
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return http.StatusText(status)
}
