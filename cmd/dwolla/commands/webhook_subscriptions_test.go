package commands_test

import (
	"testing"

	"github.com/fivetwenty-io/dwolla-client/cmd/dwolla/commands"
	"github.com/stretchr/testify/assert"
)

func TestNewWebhookSubscriptionsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewWebhookSubscriptionsCommand()
	assert.Equal(t, "webhook-subscriptions", cmd.Use)
	assert.Equal(t, []string{"webhook-subscription", "subscriptions"}, cmd.Aliases)
	assert.Equal(t, "Manage webhook subscriptions", cmd.Short)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 7)

	commandNames := make([]string, 0, len(subcommands))
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "delete")
	assert.Contains(t, commandNames, "pause")
	assert.Contains(t, commandNames, "unpause")
	assert.Contains(t, commandNames, "deliveries")
}
