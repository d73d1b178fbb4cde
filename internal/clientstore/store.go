package clientstore

// Keys persisted per client
const (
	// KeyAdminSessionToken holds the opaque admin session token
	KeyAdminSessionToken = "admin_session_token"

	// KeyAdminSessionExpires holds the ISO-8601 expiry timestamp of the admin session
	KeyAdminSessionExpires = "admin_session_expires"

	// KeyOAuthTenantID holds the tenant ID correlating an OAuth redirect with the flow that started it
	KeyOAuthTenantID = "oauth_tenant_id"

	// KeyOAuthPopup marks an OAuth flow as started from a popup window
	KeyOAuthPopup = "oauth_popup"
)

// Store defines the persisted client store API.
// All operations are synchronous and never fail from the caller's point of view: an implementation that cannot
// read or write its backend behaves as if the value is absent.
type Store interface {
	// Get retrieves the value stored under key and a boolean indicating whether it is present
	Get(key string) (string, bool)

	// Set stores value under key
	Set(key, value string)

	// Remove deletes the value stored under key
	Remove(key string)
}
