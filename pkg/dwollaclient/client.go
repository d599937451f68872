// Package dwollaclient provides the main entry point for creating Dwolla API clients
package dwollaclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/dwolla-client/internal/client"
	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// New creates a new Dwolla API client from config.
func New(ctx context.Context, config *dwolla.Config) (dwolla.Client, error) {
	if config == nil {
		return nil, dwolla.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, dwolla.ErrBaseURLRequired
	}

	// Normalize base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	// Use the internal client implementation
	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewSandbox creates a new client for the sandbox environment using
// OAuth2 client credentials.
func NewSandbox(ctx context.Context, key, secret string) (dwolla.Client, error) {
	return New(ctx, &dwolla.Config{
		BaseURL: constants.SandboxAPIURL,
		Key:     key,
		Secret:  secret,
	})
}

// NewProduction creates a new client for the production environment
// using OAuth2 client credentials.
func NewProduction(ctx context.Context, key, secret string) (dwolla.Client, error) {
	return New(ctx, &dwolla.Config{
		BaseURL: constants.ProductionAPIURL,
		Key:     key,
		Secret:  secret,
	})
}

// NewWithToken creates a new client with a base URL and a pre-issued
// access token. The token is used as-is and never refreshed.
func NewWithToken(ctx context.Context, baseURL, token string) (dwolla.Client, error) {
	return New(ctx, &dwolla.Config{
		BaseURL:     baseURL,
		AccessToken: token,
	})
}
