package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// StartAdminSession exchanges the admin PIN for a privileged session
func (client *Client) StartAdminSession(ctx context.Context, pin string) (*AdminSession, error) {
	var payload struct {
		SessionToken string `json:"session_token"`
		ExpiresAt    string `json:"expires_at"`
	}
	backendErr, err := client.do(ctx, &request{
		operation: "admin login",
		method:    http.MethodPost,
		path:      "/admin/auth",
		body:      map[string]string{"pin": pin},
	}, &payload)
	if err != nil {
		return nil, err
	}
	if backendErr != nil {
		if backendErr.Status == http.StatusUnauthorized || backendErr.Status == http.StatusForbidden {
			backendErr.kind = ErrInvalidCredentials
		}
		return nil, backendErr
	}

	if payload.SessionToken == "" {
		return nil, fmt.Errorf("admin login: the backend returned no session token")
	}
	expiresAt, err := ParseTimestamp(payload.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("admin login: invalid session expiry %q: %w", payload.ExpiresAt, err)
	}
	return &AdminSession{
		Token:     payload.SessionToken,
		ExpiresAt: expiresAt,
	}, nil
}

// FetchConnectorUsers lists every user with connected data sources and their last sync runs
func (client *Client) FetchConnectorUsers(ctx context.Context, token string) ([]*ConnectorUser, error) {
	var payload struct {
		Users []*ConnectorUser `json:"users"`
	}
	err := client.adminCall(ctx, &request{
		operation: "list connector users",
		method:    http.MethodGet,
		path:      "/admin/connectors/users",
		token:     token,
	}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.Users == nil {
		payload.Users = []*ConnectorUser{}
	}
	return payload.Users, nil
}

// TriggerConnectorSync asks the backend to start a sync run for a user and provider
func (client *Client) TriggerConnectorSync(ctx context.Context, token, userID string, provider Provider) error {
	return client.adminCall(ctx, &request{
		operation: "trigger sync",
		method:    http.MethodPost,
		path:      "/admin/connectors/sync",
		token:     token,
		body: map[string]string{
			"user_id":  userID,
			"provider": string(provider),
		},
	}, nil)
}

// FetchHealth retrieves the full health report of the backend
func (client *Client) FetchHealth(ctx context.Context, token string) (*HealthSnapshot, error) {
	snapshot := new(HealthSnapshot)
	err := client.adminCall(ctx, &request{
		operation: "full health",
		method:    http.MethodGet,
		path:      "/admin/health/full",
		token:     token,
	}, snapshot)
	if err != nil {
		return nil, err
	}
	if snapshot.Components == nil {
		snapshot.Components = map[string]*ComponentHealth{}
	}
	return snapshot, nil
}

// RunTestFlow runs the backend's end-to-end test
func (client *Client) RunTestFlow(ctx context.Context, token string) (*TestFlowResult, error) {
	result := new(TestFlowResult)
	err := client.adminCall(ctx, &request{
		operation: "end-to-end test",
		method:    http.MethodPost,
		path:      "/admin/health/test-flow",
		token:     token,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
