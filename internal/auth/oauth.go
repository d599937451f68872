package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/fivetwenty-io/dwolla-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	// ErrNoCredentials is returned when the manager holds neither a
	// usable token nor credentials to fetch one.
	ErrNoCredentials = errors.New("no valid credentials available")

	// ErrTokenRequestFailed is returned when the token endpoint answers
	// with a non-200 status.
	ErrTokenRequestFailed = errors.New("token request failed")
)

// OAuth2Config holds the settings of the client-credentials grant.
type OAuth2Config struct {
	// TokenURL is the absolute URL of the token endpoint.
	TokenURL string

	// ClientID and ClientSecret are the application credentials.
	ClientID     string
	ClientSecret string

	// AccessToken seeds the manager with a pre-issued token. The
	// manager falls back to the client-credentials grant once it
	// expires, provided ClientID and ClientSecret are set.
	AccessToken string

	// HTTPClient issues token requests. Nil uses a default client.
	HTTPClient *http.Client
}

// OAuth2TokenManager obtains tokens through the client-credentials
// grant and caches them until shortly before expiry. The token
// endpoint speaks plain JSON rather than HAL, so the manager posts the
// credentials itself instead of going through the resource transport.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *http.Client
	mu         sync.Mutex
}

// NewOAuth2TokenManager creates a token manager from config.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	manager := &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken: config.AccessToken,
			TokenType:   constants.TokenTypeBearer,
		})
	}

	return manager
}

// GetToken implements TokenManager.GetToken.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another goroutine may have fetched a token while we waited.
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.requestToken(ctx)
	if err != nil {
		return "", err
	}

	m.store.Set(token)

	return token.AccessToken, nil
}

// RefreshToken implements TokenManager.RefreshToken.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.requestToken(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken implements TokenManager.SetToken.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
		ExpiresAt:   expiresAt,
	})
}

// tokenRequest is the JSON body of a client-credentials exchange.
type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

// tokenError is the JSON body of a failed exchange.
type tokenError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (m *OAuth2TokenManager) requestToken(ctx context.Context) (*Token, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return nil, ErrNoCredentials
	}

	body, err := json.Marshal(tokenRequest{
		ClientID:     m.config.ClientID,
		ClientSecret: m.config.ClientSecret,
		GrantType:    constants.GrantTypeClientCredentials,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set(constants.HeaderContentType, constants.JSONContentType)
	req.Header.Set(constants.HeaderAccept, constants.JSONContentType)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var oauthErr tokenError
		if err := json.Unmarshal(respBody, &oauthErr); err == nil && oauthErr.Error != "" {
			return nil, fmt.Errorf("%w: %s: %s", ErrTokenRequestFailed, oauthErr.Error, oauthErr.ErrorDescription)
		}

		return nil, fmt.Errorf("%w: status %d", ErrTokenRequestFailed, resp.StatusCode)
	}

	var token Token
	if err := json.Unmarshal(respBody, &token); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	if token.TokenType == "" {
		token.TokenType = constants.TokenTypeBearer
	}

	return &token, nil
}
