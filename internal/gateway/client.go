package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HeaderAdminSession carries the admin session token on admin-scoped calls
const HeaderAdminSession = "X-Admin-Session"

// Client is a typed HTTP client for the CORTEX backend.
// It performs no retries; every failure is surfaced to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the gateway client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.httpClient = httpClient
	}
}

// New creates a new gateway client talking to the backend at baseURL
func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		// timeouts are inherited from the default transport
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type request struct {
	operation string
	method    string
	path      string
	query     url.Values
	token     string
	body      any
}

// do executes a request and decodes a 2xx response body into target (if not nil)
func (client *Client) do(ctx context.Context, req *request, target any) (*BackendError, error) {
	endpoint := client.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", req.operation, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.operation, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set(HeaderAdminSession, req.token)
	}

	resp, err := client.httpClient.Do(httpReq)
	if err != nil {
		log.Debug().Err(err).Str("operation", req.operation).Msg("backend request failed")
		return nil, fmt.Errorf("%s: %w: %w", req.operation, ErrUnreachable, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("operation", req.operation).
		Str("method", req.method).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Msg("backend request")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", req.operation, ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newBackendError(req.operation, resp.StatusCode, raw), nil
	}

	if target != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("%s: could not decode the response: %w", req.operation, err)
		}
	}
	return nil, nil
}

// call is do with backend rejections folded into the returned error
func (client *Client) call(ctx context.Context, req *request, target any) error {
	backendErr, err := client.do(ctx, req, target)
	if err != nil {
		return err
	}
	if backendErr != nil {
		return backendErr
	}
	return nil
}

// adminCall is call for admin-scoped endpoints which require a session token
func (client *Client) adminCall(ctx context.Context, req *request, target any) error {
	if req.token == "" {
		return fmt.Errorf("%s: %w", req.operation, ErrNoSession)
	}
	return client.call(ctx, req, target)
}
