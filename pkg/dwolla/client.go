package dwolla

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Client is the top-level interface of the API client. It groups the
// typed resource clients and a raw request surface for endpoints the
// typed clients do not cover.
type Client interface {
	// Root returns the client for the API root document.
	Root() RootClient

	// Accounts returns the client for master account operations.
	Accounts() AccountsClient

	// Customers returns the client for customer operations.
	Customers() CustomersClient

	// FundingSources returns the client for funding source operations.
	FundingSources() FundingSourcesClient

	// Transfers returns the client for transfer operations.
	Transfers() TransfersClient

	// Documents returns the client for verification document operations.
	Documents() DocumentsClient

	// BeneficialOwners returns the client for beneficial owner operations.
	BeneficialOwners() BeneficialOwnersClient

	// BusinessClassifications returns the client for business
	// classification operations.
	BusinessClassifications() BusinessClassificationsClient

	// MassPayments returns the client for mass payment operations.
	MassPayments() MassPaymentsClient

	// WebhookSubscriptions returns the client for webhook subscription
	// operations.
	WebhookSubscriptions() WebhookSubscriptionsClient

	// Webhooks returns the client for webhook delivery records.
	Webhooks() WebhooksClient

	// Events returns the client for event operations.
	Events() EventsClient

	RawClient
}

// RawClient issues requests against arbitrary API paths. Paths may be
// relative to the configured base URL or absolute, so HAL links taken
// from responses can be followed directly.
type RawClient interface {
	// Get issues a GET request and decodes the response into out.
	// A nil out discards the body.
	Get(ctx context.Context, path string, query url.Values, out interface{}) error

	// Post issues a POST request with a JSON body and decodes the
	// response into out.
	Post(ctx context.Context, path string, body, out interface{}) error

	// PostWithHeaders issues a POST request with additional headers,
	// such as Idempotency-Key.
	PostWithHeaders(ctx context.Context, path string, body interface{}, headers map[string]string, out interface{}) error

	// Delete issues a DELETE request. body may be nil.
	Delete(ctx context.Context, path string, body, out interface{}) error

	// Upload issues a multipart/form-data POST carrying a verification
	// document.
	Upload(ctx context.Context, path string, upload *DocumentUploadRequest, out interface{}) error

	// Token returns the current bearer token, fetching a fresh one when
	// the cached token is missing or expired.
	Token(ctx context.Context) (string, error)
}

// Logger defines the logging interface used by the client. It matches
// structured loggers with minimal adaptation.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds the settings for creating a client.
type Config struct {
	// BaseURL is the API endpoint, for example
	// https://api-sandbox.dwolla.com. Required.
	BaseURL string

	// Key and Secret are the application credentials exchanged for
	// bearer tokens via the client-credentials grant.
	Key    string
	Secret string

	// AccessToken uses a fixed bearer token instead of the
	// client-credentials grant. Useful for short-lived scripts and tests.
	AccessToken string

	// TokenURL overrides the token endpoint. Empty defaults to
	// BaseURL + "/token".
	TokenURL string

	// UserAgent overrides the User-Agent header on every request.
	UserAgent string

	// HTTPClient, when set, issues every request. Supply one to control
	// timeouts, proxies, connection pooling, or retry policy. The
	// library itself never retries; a failed request surfaces
	// immediately and the retry decision stays with the caller.
	HTTPClient *http.Client

	// HTTPTimeout sets the timeout of the default HTTP client. Ignored
	// when HTTPClient is set.
	HTTPTimeout time.Duration

	// Debug enables request and response logging through Logger.
	Debug bool

	// Logger receives structured log entries. Nil disables logging.
	Logger Logger
}
