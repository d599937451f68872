package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/dwolla-client/internal/auth"
	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)

// Client implements the dwolla.Client interface.
type Client struct {
	httpClient   *transport.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       dwolla.Logger

	// Resource clients
	root                    dwolla.RootClient
	accounts                dwolla.AccountsClient
	customers               dwolla.CustomersClient
	fundingSources          dwolla.FundingSourcesClient
	transfers               dwolla.TransfersClient
	documents               dwolla.DocumentsClient
	beneficialOwners        dwolla.BeneficialOwnersClient
	businessClassifications dwolla.BusinessClassificationsClient
	massPayments            dwolla.MassPaymentsClient
	webhookSubscriptions    dwolla.WebhookSubscriptionsClient
	webhooks                dwolla.WebhooksClient
	events                  dwolla.EventsClient
}

// createTokenManager creates the appropriate token manager based on the
// configured credentials. An explicit access token wins over
// application keys.
func createTokenManager(config *dwolla.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return &staticTokenManager{token: config.AccessToken}
	}

	if config.Key != "" && config.Secret != "" {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     getTokenURL(config),
			ClientID:     config.Key,
			ClientSecret: config.Secret,
			HTTPClient:   config.HTTPClient,
		})
	}

	return nil // No authentication
}

// getTokenURL returns the token URL from config or the default token
// endpoint under the base URL.
func getTokenURL(config *dwolla.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return strings.TrimSuffix(config.BaseURL, "/") + constants.TokenPath
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *dwolla.Config) []transport.Option {
	var httpOpts []transport.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, transport.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, transport.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, transport.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, transport.WithHTTPClient(config.HTTPClient))
	} else if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, transport.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new API client. Construction performs no network
// requests; a bearer token is fetched on demand by the first request.
func New(ctx context.Context, config *dwolla.Config) (*Client, error) {
	if config == nil {
		return nil, dwolla.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, dwolla.ErrBaseURLRequired
	}

	// Create token manager based on available credentials
	tokenManager := createTokenManager(config)

	// Create HTTP client options
	httpOpts := createHTTPClientOptions(config)

	// Create HTTP client
	httpClient := transport.NewClient(config.BaseURL, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.BaseURL,
		logger:       config.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// NewWithTokenManager creates a new API client around an externally
// built token manager. The CLI uses this to persist minted tokens
// across invocations.
func NewWithTokenManager(config *dwolla.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, dwolla.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, dwolla.ErrBaseURLRequired
	}

	httpClient := transport.NewClient(config.BaseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.BaseURL,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Resource client accessors

// Root implements dwolla.Client.Root.
func (c *Client) Root() dwolla.RootClient {
	return c.root
}

// Accounts implements dwolla.Client.Accounts.
func (c *Client) Accounts() dwolla.AccountsClient {
	return c.accounts
}

// Customers implements dwolla.Client.Customers.
func (c *Client) Customers() dwolla.CustomersClient {
	return c.customers
}

// FundingSources implements dwolla.Client.FundingSources.
func (c *Client) FundingSources() dwolla.FundingSourcesClient {
	return c.fundingSources
}

// Transfers implements dwolla.Client.Transfers.
func (c *Client) Transfers() dwolla.TransfersClient {
	return c.transfers
}

// Documents implements dwolla.Client.Documents.
func (c *Client) Documents() dwolla.DocumentsClient {
	return c.documents
}

// BeneficialOwners implements dwolla.Client.BeneficialOwners.
func (c *Client) BeneficialOwners() dwolla.BeneficialOwnersClient {
	return c.beneficialOwners
}

// BusinessClassifications implements dwolla.Client.BusinessClassifications.
func (c *Client) BusinessClassifications() dwolla.BusinessClassificationsClient {
	return c.businessClassifications
}

// MassPayments implements dwolla.Client.MassPayments.
func (c *Client) MassPayments() dwolla.MassPaymentsClient {
	return c.massPayments
}

// WebhookSubscriptions implements dwolla.Client.WebhookSubscriptions.
func (c *Client) WebhookSubscriptions() dwolla.WebhookSubscriptionsClient {
	return c.webhookSubscriptions
}

// Webhooks implements dwolla.Client.Webhooks.
func (c *Client) Webhooks() dwolla.WebhooksClient {
	return c.webhooks
}

// Events implements dwolla.Client.Events.
func (c *Client) Events() dwolla.EventsClient {
	return c.events
}

// Raw request surface

// Get implements dwolla.RawClient.Get.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return err
	}

	return decodeResponse(resp, out)
}

// Post implements dwolla.RawClient.Post.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return err
	}

	return decodeResponse(resp, out)
}

// PostWithHeaders implements dwolla.RawClient.PostWithHeaders.
func (c *Client) PostWithHeaders(ctx context.Context, path string, body interface{}, headers map[string]string, out interface{}) error {
	resp, err := c.httpClient.PostWithHeaders(ctx, path, body, headers)
	if err != nil {
		return err
	}

	return decodeResponse(resp, out)
}

// Delete implements dwolla.RawClient.Delete.
func (c *Client) Delete(ctx context.Context, path string, body, out interface{}) error {
	resp, err := c.httpClient.Delete(ctx, path, body)
	if err != nil {
		return err
	}

	return decodeResponse(resp, out)
}

// Upload implements dwolla.RawClient.Upload.
func (c *Client) Upload(ctx context.Context, path string, upload *dwolla.DocumentUploadRequest, out interface{}) error {
	form, contentType, err := encodeDocumentForm(upload)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.PostRaw(ctx, path, form, contentType)
	if err != nil {
		return err
	}

	return decodeResponse(resp, out)
}

// Token implements dwolla.RawClient.Token.
func (c *Client) Token(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.root = NewRootClient(c.httpClient)
	c.accounts = NewAccountsClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.fundingSources = NewFundingSourcesClient(c.httpClient)
	c.transfers = NewTransfersClient(c.httpClient)
	c.documents = NewDocumentsClient(c.httpClient)
	c.beneficialOwners = NewBeneficialOwnersClient(c.httpClient)
	c.businessClassifications = NewBusinessClassificationsClient(c.httpClient)
	c.massPayments = NewMassPaymentsClient(c.httpClient)
	c.webhookSubscriptions = NewWebhookSubscriptionsClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
}

// staticTokenManager provides a static token.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

func (m *staticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// loggerAdapter adapts dwolla.Logger to transport.Logger.
type loggerAdapter struct {
	logger dwolla.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
