package commands_test

import (
	"testing"

	"github.com/fivetwenty-io/dwolla-client/cmd/dwolla/commands"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateClient reads viper's global state, so these subtests run
// sequentially and reset it between cases.
func TestCreateClient(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("requires credentials", func(t *testing.T) {
		viper.Reset()

		_, err := commands.CreateClient()
		assert.ErrorIs(t, err, commands.ErrNoCredentialsConfigured)
	})

	t.Run("requires both key and secret", func(t *testing.T) {
		viper.Reset()
		viper.Set("key", "client-key")

		_, err := commands.CreateClient()
		assert.ErrorIs(t, err, commands.ErrNoCredentialsConfigured)
	})

	t.Run("rejects unknown environment", func(t *testing.T) {
		viper.Reset()
		viper.Set("environment", "staging")
		viper.Set("token", "cli-token")

		_, err := commands.CreateClient()
		assert.ErrorIs(t, err, commands.ErrUnknownEnvironment)
	})

	t.Run("creates client with access token", func(t *testing.T) {
		viper.Reset()
		viper.Set("token", "cli-token")

		client, err := commands.CreateClient()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("creates client with key and secret and retries", func(t *testing.T) {
		viper.Reset()
		viper.Set("key", "client-key")
		viper.Set("secret", "client-secret")
		viper.Set("retries", 3)

		client, err := commands.CreateClient()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("honors base URL override", func(t *testing.T) {
		viper.Reset()
		viper.Set("base_url", "https://api.example.com")
		viper.Set("token", "cli-token")

		client, err := commands.CreateClient()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
