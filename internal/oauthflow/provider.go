package oauthflow

import (
	"github.com/cortex-platform/console/internal/gateway"
	"strings"
)

// ProviderForConfigKey derives the mail provider from an integration config key.
// The backend does not return an explicit provider, so keys containing "gmail" or "google" map to Gmail and
// everything else maps to Outlook.
func ProviderForConfigKey(configKey string) gateway.Provider {
	lower := strings.ToLower(configKey)
	if strings.Contains(lower, "gmail") || strings.Contains(lower, "google") {
		return gateway.ProviderGmail
	}
	return gateway.ProviderOutlook
}
