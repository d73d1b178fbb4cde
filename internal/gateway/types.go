package gateway

import (
	"strings"
	"time"
)

// Provider represents a third-party data source the backend can ingest from
type Provider string

const (
	ProviderGmail   Provider = "gmail"
	ProviderOutlook Provider = "outlook"
	ProviderDrive   Provider = "drive"
)

// Providers lists every known provider
var Providers = []Provider{ProviderGmail, ProviderOutlook, ProviderDrive}

// ParseProvider parses a provider name case-insensitively
func ParseProvider(raw string) (Provider, bool) {
	candidate := Provider(strings.ToLower(strings.TrimSpace(raw)))
	for _, provider := range Providers {
		if provider == candidate {
			return provider, true
		}
	}
	return "", false
}

// SyncState represents the state of a connector sync run
type SyncState string

const (
	SyncPending   SyncState = "pending"
	SyncCompleted SyncState = "completed"
	SyncFailed    SyncState = "failed"
)

// SyncStatus is the backend's projection of the last sync run of a user and provider
type SyncStatus struct {
	Status    SyncState `json:"status"`
	CreatedAt Timestamp `json:"created_at"`
	Error     string    `json:"error,omitempty"`
}

// ConnectorUser represents a user with connected data sources
type ConnectorUser struct {
	UserID    string                   `json:"user_id"`
	LastSyncs map[Provider]*SyncStatus `json:"last_syncs"`
}

// Health components reported by the backend
const (
	ComponentDatabase = "database"
	ComponentQdrant   = "qdrant"
	ComponentNeo4j    = "neo4j"
	ComponentRedis    = "redis"
)

// ComponentHealth represents the health of a single backend component
type ComponentHealth struct {
	Status    string  `json:"status"`
	Message   string  `json:"message,omitempty"`
	Error     string  `json:"error,omitempty"`
	LatencyMS float64 `json:"latency_ms,omitempty"`
}

// HealthSnapshot represents the full health report of the backend
type HealthSnapshot struct {
	Status     string                      `json:"status"`
	Components map[string]*ComponentHealth `json:"components"`
	Timestamp  Timestamp                   `json:"timestamp"`
}

// Healthy reports whether the backend considers itself healthy
func (snapshot *HealthSnapshot) Healthy() bool {
	return strings.EqualFold(snapshot.Status, "healthy") || strings.EqualFold(snapshot.Status, "ok")
}

// TestFlowResult represents the outcome of the backend's end-to-end test
type TestFlowResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Succeeded reports whether the end-to-end test passed
func (result *TestFlowResult) Succeeded() bool {
	return result.Status == "success"
}

// AdminSession is the privileged session issued by the backend on admin login
type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

// Connection identifies a completed OAuth connection
type Connection struct {
	TenantID          string `json:"tenantId"`
	ProviderConfigKey string `json:"providerConfigKey"`
	ConnectionID      string `json:"connectionId"`
}

// Complete reports whether every part of the correlation triple is present
func (connection Connection) Complete() bool {
	return connection.TenantID != "" && connection.ProviderConfigKey != "" && connection.ConnectionID != ""
}

// ConnectStart holds the provider authorization URL for a new OAuth connection
type ConnectStart struct {
	AuthURL  string `json:"auth_url"`
	Provider string `json:"provider"`
	TenantID string `json:"tenant_id"`
}

// ConnectionStatus holds the per-provider connection state of a tenant
type ConnectionStatus struct {
	TenantID  string         `json:"tenant_id"`
	Providers map[string]any `json:"providers"`
}
