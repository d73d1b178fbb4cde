package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// FinalizeOAuthConnection durably records a completed OAuth connection at the backend
func (client *Client) FinalizeOAuthConnection(ctx context.Context, connection Connection) error {
	if !connection.Complete() {
		return fmt.Errorf("finalize connection: %w", ErrMissingCorrelation)
	}
	return client.call(ctx, &request{
		operation: "finalize connection",
		method:    http.MethodPost,
		path:      "/nango/oauth/callback",
		body:      connection,
	}, nil)
}

// StartConnect requests the provider authorization URL for a new OAuth connection
func (client *Client) StartConnect(ctx context.Context, provider Provider, tenantID string) (*ConnectStart, error) {
	start := new(ConnectStart)
	err := client.call(ctx, &request{
		operation: "connect start",
		method:    http.MethodGet,
		path:      "/connect/start",
		query: url.Values{
			"provider": {string(provider)},
			"tenantId": {tenantID},
		},
	}, start)
	if err != nil {
		return nil, err
	}
	if start.AuthURL == "" {
		return nil, fmt.Errorf("connect start: the backend returned no authorization URL")
	}
	return start, nil
}

// ConnectionStatus retrieves the per-provider connection state of a tenant
func (client *Client) ConnectionStatus(ctx context.Context, tenantID string) (*ConnectionStatus, error) {
	status := new(ConnectionStatus)
	err := client.call(ctx, &request{
		operation: "connection status",
		method:    http.MethodGet,
		path:      "/status",
		query:     url.Values{"tenantId": {tenantID}},
	}, status)
	if err != nil {
		return nil, err
	}
	if status.Providers == nil {
		status.Providers = map[string]any{}
	}
	return status, nil
}

// SyncOnce triggers a single manual sync of a tenant's mailbox.
// Only mail providers support manual syncs.
func (client *Client) SyncOnce(ctx context.Context, provider Provider, tenantID string) error {
	if provider != ProviderGmail && provider != ProviderOutlook {
		return fmt.Errorf("manual sync: %w: %s", ErrUnsupportedProvider, provider)
	}
	return client.call(ctx, &request{
		operation: "manual sync",
		method:    http.MethodGet,
		path:      "/sync/once/" + url.PathEscape(string(provider)),
		query:     url.Values{"tenantId": {tenantID}},
	}, nil)
}
