package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// WebhooksClient implements dwolla.WebhooksClient.
type WebhooksClient struct {
	httpClient *transport.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *transport.Client) *WebhooksClient {
	return &WebhooksClient{httpClient: httpClient}
}

// Get implements dwolla.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, webhookID string) (*dwolla.Webhook, error) {
	path := fmt.Sprintf("/webhooks/%s", webhookID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	var webhook dwolla.Webhook

	err = json.Unmarshal(resp.Body, &webhook)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook response: %w", err)
	}

	return &webhook, nil
}

// ListForSubscription implements dwolla.WebhooksClient.ListForSubscription.
func (c *WebhooksClient) ListForSubscription(ctx context.Context, subscriptionID string, params *dwolla.QueryParams) (*dwolla.WebhookList, error) {
	path := fmt.Sprintf("/webhook-subscriptions/%s/webhooks", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	var list dwolla.WebhookList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook list response: %w", err)
	}

	return &list, nil
}

// ListRetries implements dwolla.WebhooksClient.ListRetries.
func (c *WebhooksClient) ListRetries(ctx context.Context, webhookID string) (*dwolla.WebhookRetryList, error) {
	path := fmt.Sprintf("/webhooks/%s/retries", webhookID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing webhook retries: %w", err)
	}

	var list dwolla.WebhookRetryList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook retry list response: %w", err)
	}

	return &list, nil
}

// Retry implements dwolla.WebhooksClient.Retry.
func (c *WebhooksClient) Retry(ctx context.Context, webhookID string) (*dwolla.WebhookRetry, error) {
	path := fmt.Sprintf("/webhooks/%s/retries", webhookID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("retrying webhook: %w", err)
	}

	return followCreated[dwolla.WebhookRetry](ctx, c.httpClient, resp)
}
