package validation

import (
	"fmt"
	"github.com/cortex-platform/console/internal/api/schema"
	"github.com/cortex-platform/console/internal/gateway"
	"net/http"
	"strings"
)

var (
	errQueryParameterMissing = func(name string) *schema.Error {
		return &schema.Error{
			Type:    "validation.query.parameter.missing",
			Message: fmt.Sprintf("The query parameter '%s' is required but was not present in the request.", name),
			Details: map[string]any{
				"parameter": name,
			},
		}
	}
	errParameterInvalidProvider = func(name, value string) *schema.Error {
		return &schema.Error{
			Type:    "validation.parameter.invalidProvider",
			Message: fmt.Sprintf("The parameter '%s' ('%s') is not a known provider.", name, value),
			Details: map[string]any{
				"parameter": name,
				"value":     value,
				"expected":  gateway.Providers,
			},
		}
	}
)

// QueryString extracts a string value out of the query parameters of the given request.
// Blank values count as absent.
func QueryString(request *http.Request, key string, required bool, def string) (string, *schema.Error) {
	value := strings.TrimSpace(request.URL.Query().Get(key))
	if value == "" {
		if required {
			return "", errQueryParameterMissing(key)
		}
		return def, nil
	}
	return value, nil
}

// QueryFlag reports whether the query parameter key is set to the given value (case-insensitive)
func QueryFlag(request *http.Request, key, value string) bool {
	return strings.EqualFold(strings.TrimSpace(request.URL.Query().Get(key)), value)
}

// Provider validates a raw provider name taken from the parameter name
func Provider(name, raw string) (gateway.Provider, *schema.Error) {
	provider, ok := gateway.ParseProvider(raw)
	if !ok {
		return "", errParameterInvalidProvider(name, raw)
	}
	return provider, nil
}
