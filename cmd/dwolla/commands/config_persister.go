package commands

import (
	"sync"
	"time"
)

// ConfigPersister implements the auth.ConfigPersister interface by
// writing minted tokens back to the CLI config file.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateToken updates the cached token and its expiry in the config.
func (p *ConfigPersister) UpdateToken(token string, expiresAt time.Time) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.Token = token

	if expiresAt.IsZero() {
		config.TokenExpiry = nil
	} else {
		config.TokenExpiry = &expiresAt
	}

	return saveConfigStruct(config)
}
