package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewWebhookSubscriptionsCommand creates the webhook-subscriptions
// command group.
func NewWebhookSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhook-subscriptions",
		Aliases: []string{"webhook-subscription", "subscriptions"},
		Short:   "Manage webhook subscriptions",
		Long:    "Register, pause, and remove the endpoints receiving webhook notifications",
	}

	cmd.AddCommand(newWebhookSubscriptionsListCommand())
	cmd.AddCommand(newWebhookSubscriptionsGetCommand())
	cmd.AddCommand(newWebhookSubscriptionsCreateCommand())
	cmd.AddCommand(newWebhookSubscriptionsDeleteCommand())
	cmd.AddCommand(newWebhookSubscriptionsPauseCommand())
	cmd.AddCommand(newWebhookSubscriptionsUnpauseCommand())
	cmd.AddCommand(newWebhookSubscriptionsDeliveriesCommand())

	return cmd
}

func newWebhookSubscriptionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhook subscriptions",
		Long:  "List the webhook subscriptions of the authorized application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscriptions, err := client.WebhookSubscriptions().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list webhook subscriptions: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(subscriptions.Resources())
			case OutputFormatYAML:
				return printYAML(subscriptions.Resources())
			default:
				return outputWebhookSubscriptionsListTable(subscriptions.Resources())
			}
		},
	}
}

func outputWebhookSubscriptionsListTable(subscriptions []dwolla.WebhookSubscription) error {
	if len(subscriptions) == 0 {
		_, _ = os.Stdout.WriteString("No webhook subscriptions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "URL", "Paused", "Created")

	for _, subscription := range subscriptions {
		_ = table.Append(subscription.ID, subscription.URL,
			fmt.Sprintf("%t", subscription.Paused), subscription.Created.Format("2006-01-02"))
	}

	_ = table.Render()

	return nil
}

func newWebhookSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get webhook subscription details",
		Long:  "Display detailed information about a specific webhook subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.WebhookSubscriptions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get webhook subscription '%s': %w", args[0], err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(subscription)
			case OutputFormatYAML:
				return printYAML(subscription)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", subscription.ID)
				_ = table.Append("URL", subscription.URL)
				_ = table.Append("Paused", fmt.Sprintf("%t", subscription.Paused))
				_ = table.Append("Created", subscription.Created.Format("2006-01-02 15:04:05"))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render subscription table: %w", err)
				}

				return nil
			}
		},
	}
}

func newWebhookSubscriptionsCreateCommand() *cobra.Command {
	var (
		url    string
		secret string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook subscription",
		Long: `Register an endpoint to receive webhook notifications.

The secret keys the HMAC-SHA256 signature carried in the
X-Request-Signature-SHA-256 header of every delivery; receivers must
verify it before trusting a payload.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			createReq := &dwolla.WebhookSubscriptionCreateRequest{
				URL:    url,
				Secret: secret,
			}

			subscription, err := client.WebhookSubscriptions().Create(context.Background(), createReq)
			if err != nil {
				return fmt.Errorf("failed to create webhook subscription: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created webhook subscription for %s\n", subscription.URL)
			_, _ = fmt.Fprintf(os.Stdout, "  ID: %s\n", subscription.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "endpoint URL receiving deliveries (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "shared secret signing deliveries (required)")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

func newWebhookSubscriptionsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete SUBSCRIPTION_ID",
		Short: "Delete a webhook subscription",
		Long:  "Unregister a webhook subscription; deliveries stop immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmAction("delete", "webhook subscription", args[0]) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.WebhookSubscriptions().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete webhook subscription '%s': %w", args[0], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted webhook subscription '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newWebhookSubscriptionsPauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pause SUBSCRIPTION_ID",
		Short: "Pause a webhook subscription",
		Long:  "Stop deliveries without unregistering the subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.WebhookSubscriptions().Pause(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to pause webhook subscription '%s': %w", args[0], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Webhook subscription '%s' paused\n", subscription.ID)

			return nil
		},
	}
}

func newWebhookSubscriptionsUnpauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpause SUBSCRIPTION_ID",
		Short: "Unpause a webhook subscription",
		Long:  "Resume deliveries to a paused subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.WebhookSubscriptions().Unpause(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to unpause webhook subscription '%s': %w", args[0], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Webhook subscription '%s' unpaused\n", subscription.ID)

			return nil
		},
	}
}

func newWebhookSubscriptionsDeliveriesCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "deliveries SUBSCRIPTION_ID",
		Short: "List a subscription's deliveries",
		Long:  "List the webhook delivery attempts made to a subscription's endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := dwolla.NewQueryParams().WithLimit(limit).WithOffset(offset)

			webhooks, err := client.Webhooks().ListForSubscription(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list deliveries: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(webhooks.Resources())
			case OutputFormatYAML:
				return printYAML(webhooks.Resources())
			default:
				return outputWebhookDeliveriesTable(webhooks.Resources())
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")

	return cmd
}

func outputWebhookDeliveriesTable(webhooks []dwolla.Webhook) error {
	if len(webhooks) == 0 {
		_, _ = os.Stdout.WriteString("No deliveries found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Topic", "Event ID", "Attempts", "Last Status")

	for _, webhook := range webhooks {
		_ = table.Append(webhook.ID, webhook.Topic, webhook.EventID,
			fmt.Sprintf("%d", len(webhook.Attempts)), webhookLastStatus(webhook))
	}

	_ = table.Render()

	return nil
}

// webhookLastStatus reports the HTTP status of the most recent attempt.
func webhookLastStatus(webhook dwolla.Webhook) string {
	if len(webhook.Attempts) == 0 {
		return NotAvailable
	}

	last := webhook.Attempts[len(webhook.Attempts)-1]

	return fmt.Sprintf("%d", last.Response.StatusCode)
}
