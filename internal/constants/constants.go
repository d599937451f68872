// Package constants defines shared constant values used across the client.
package constants

import "time"

// API endpoints.
const (
	// SandboxAPIURL is the base URL for the sandbox environment.
	SandboxAPIURL = "https://api-sandbox.dwolla.com"

	// ProductionAPIURL is the base URL for the production environment.
	ProductionAPIURL = "https://api.dwolla.com"

	// TokenPath is the path of the OAuth token endpoint, relative to the base URL.
	TokenPath = "/token"
)

// Media types.
const (
	// HALContentType is the vendored HAL media type used for API resources.
	HALContentType = "application/vnd.dwolla.v1.hal+json"

	// JSONContentType is the plain JSON media type used for token requests.
	JSONContentType = "application/json"
)

// HTTP headers.
const (
	// HeaderAuthorization holds the bearer token.
	HeaderAuthorization = "Authorization"

	// HeaderAccept negotiates the response media type.
	HeaderAccept = "Accept"

	// HeaderContentType declares the request body media type.
	HeaderContentType = "Content-Type"

	// HeaderUserAgent identifies the client software.
	HeaderUserAgent = "User-Agent"

	// HeaderRequestID carries the server-assigned correlation id on responses.
	HeaderRequestID = "X-Request-Id"

	// HeaderLocation points at a freshly created resource.
	HeaderLocation = "Location"
)

// Timeouts and expiration.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// TokenExpirationBuffer is the buffer time before token expiration.
	TokenExpirationBuffer = 30 * time.Second
)

// OAuth constants.
const (
	// GrantTypeClientCredentials is the only grant type the API supports
	// for server-to-server integrations.
	GrantTypeClientCredentials = "client_credentials"

	// TokenTypeBearer is the token type returned by the token endpoint.
	TokenTypeBearer = "bearer"
)

// Pagination and display limits.
const (
	// DefaultListLimit is the page size used when the caller does not set one.
	DefaultListLimit = 25

	// MaxListLimit is the largest page size the API accepts.
	MaxListLimit = 200
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// MaskedSecret hides credential values in displayed output.
const MaskedSecret = "***"
