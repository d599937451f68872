// Package auth manages OAuth tokens for the API client.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/fivetwenty-io/dwolla-client/internal/constants"
)

// Token represents an access token returned by the token endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`

	// ExpiresAt is computed from ExpiresIn when the token is received.
	ExpiresAt time.Time `json:"-"`
}

// Valid returns true when the token exists and has not expired. Tokens
// within the expiration buffer count as expired so requests never race
// the server-side cutoff.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpirationBuffer).Before(t.ExpiresAt)
}

// TokenStore holds a token for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil when none is stored.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set stores a token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear drops the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}

// TokenManager provides access tokens for API requests.
type TokenManager interface {
	// GetToken returns a valid access token, fetching a fresh one when
	// the cached token is missing or expired.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken discards the cached token and fetches a fresh one.
	RefreshToken(ctx context.Context) error

	// SetToken seeds the manager with an externally obtained token.
	SetToken(token string, expiresAt time.Time)
}
