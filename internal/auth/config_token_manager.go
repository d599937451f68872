package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// ConfigPersister saves a minted token so later processes can reuse it
// instead of minting again.
type ConfigPersister interface {
	UpdateToken(token string, expiresAt time.Time) error
}

// ConfigTokenManager wraps OAuth2TokenManager and persists every newly
// minted token through the configured persister. The CLI uses it to
// share tokens across invocations; tokens stay valid for an hour, so a
// persisted token usually outlives several commands.
type ConfigTokenManager struct {
	oauth2Manager *OAuth2TokenManager
	persister     ConfigPersister
	mutex         sync.Mutex
	lastToken     string
	lastExpiry    time.Time
}

// NewConfigTokenManager creates a config-persisting token manager. A
// non-empty initialToken seeds the manager and is used until it
// expires; pass a zero initialExpiry to force a fresh mint on first
// use.
func NewConfigTokenManager(config *OAuth2Config, persister ConfigPersister, initialToken string, initialExpiry time.Time) *ConfigTokenManager {
	oauth2Manager := NewOAuth2TokenManager(config)

	if initialToken != "" && !initialExpiry.IsZero() {
		oauth2Manager.SetToken(initialToken, initialExpiry)
	}

	return &ConfigTokenManager{
		oauth2Manager: oauth2Manager,
		persister:     persister,
		lastToken:     initialToken,
		lastExpiry:    initialExpiry,
	}
}

// GetToken returns a valid access token, minting a fresh one when the
// cached token is missing or expired. Freshly minted tokens are
// persisted before the call returns so a short-lived process cannot
// lose them.
func (m *ConfigTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token, err := m.oauth2Manager.GetToken(ctx)
	if err != nil {
		return "", err
	}

	m.persistIfChanged()

	return token, nil
}

// RefreshToken discards the cached token, mints a fresh one and
// persists it.
func (m *ConfigTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := m.oauth2Manager.RefreshToken(ctx)
	if err != nil {
		return err
	}

	m.persistIfChanged()

	return nil
}

// SetToken seeds the manager with an externally obtained token. The
// token is not persisted; it already came from somewhere durable.
func (m *ConfigTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.oauth2Manager.SetToken(token, expiresAt)
	m.lastToken = token
	m.lastExpiry = expiresAt
}

// TokenExpiry returns the expiration time of the cached token, or the
// zero time when no token is cached.
func (m *ConfigTokenManager) TokenExpiry() time.Time {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token := m.oauth2Manager.store.Get()
	if token == nil {
		return time.Time{}
	}

	return token.ExpiresAt
}

// persistIfChanged saves the cached token when it differs from the last
// persisted one. A persist failure never fails the request that minted
// the token; the caller still holds a usable token.
func (m *ConfigTokenManager) persistIfChanged() {
	current := m.oauth2Manager.store.Get()
	if current == nil {
		return
	}

	if current.AccessToken == m.lastToken && current.ExpiresAt.Equal(m.lastExpiry) {
		return
	}

	persistErr := m.persistToken(current)
	if persistErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v\n", persistErr)
	}

	m.lastToken = current.AccessToken
	m.lastExpiry = current.ExpiresAt
}

// persistToken saves the token through the persister.
func (m *ConfigTokenManager) persistToken(token *Token) error {
	if m.persister == nil {
		return ErrNoConfigPersister
	}

	err := m.persister.UpdateToken(token.AccessToken, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	return nil
}
