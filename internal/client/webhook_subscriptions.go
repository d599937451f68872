package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// pauseRequest pauses or resumes webhook deliveries.
type pauseRequest struct {
	Paused bool `json:"paused"`
}

// WebhookSubscriptionsClient implements dwolla.WebhookSubscriptionsClient.
type WebhookSubscriptionsClient struct {
	httpClient *transport.Client
}

// NewWebhookSubscriptionsClient creates a new webhook subscriptions client.
func NewWebhookSubscriptionsClient(httpClient *transport.Client) *WebhookSubscriptionsClient {
	return &WebhookSubscriptionsClient{httpClient: httpClient}
}

// Create implements dwolla.WebhookSubscriptionsClient.Create.
func (c *WebhookSubscriptionsClient) Create(ctx context.Context, request *dwolla.WebhookSubscriptionCreateRequest) (*dwolla.WebhookSubscription, error) {
	resp, err := c.httpClient.Post(ctx, "/webhook-subscriptions", request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook subscription: %w", err)
	}

	return followCreated[dwolla.WebhookSubscription](ctx, c.httpClient, resp)
}

// Get implements dwolla.WebhookSubscriptionsClient.Get.
func (c *WebhookSubscriptionsClient) Get(ctx context.Context, subscriptionID string) (*dwolla.WebhookSubscription, error) {
	path := fmt.Sprintf("/webhook-subscriptions/%s", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook subscription: %w", err)
	}

	var subscription dwolla.WebhookSubscription

	err = json.Unmarshal(resp.Body, &subscription)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook subscription response: %w", err)
	}

	return &subscription, nil
}

// List implements dwolla.WebhookSubscriptionsClient.List.
func (c *WebhookSubscriptionsClient) List(ctx context.Context) (*dwolla.WebhookSubscriptionList, error) {
	resp, err := c.httpClient.Get(ctx, "/webhook-subscriptions", nil)
	if err != nil {
		return nil, fmt.Errorf("listing webhook subscriptions: %w", err)
	}

	var list dwolla.WebhookSubscriptionList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook subscription list response: %w", err)
	}

	return &list, nil
}

// Delete implements dwolla.WebhookSubscriptionsClient.Delete.
func (c *WebhookSubscriptionsClient) Delete(ctx context.Context, subscriptionID string) error {
	path := fmt.Sprintf("/webhook-subscriptions/%s", subscriptionID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting webhook subscription: %w", err)
	}

	return nil
}

// Pause implements dwolla.WebhookSubscriptionsClient.Pause.
func (c *WebhookSubscriptionsClient) Pause(ctx context.Context, subscriptionID string) (*dwolla.WebhookSubscription, error) {
	return c.setPaused(ctx, subscriptionID, true)
}

// Unpause implements dwolla.WebhookSubscriptionsClient.Unpause.
func (c *WebhookSubscriptionsClient) Unpause(ctx context.Context, subscriptionID string) (*dwolla.WebhookSubscription, error) {
	return c.setPaused(ctx, subscriptionID, false)
}

// setPaused posts the paused flag of the subscription.
func (c *WebhookSubscriptionsClient) setPaused(ctx context.Context, subscriptionID string, paused bool) (*dwolla.WebhookSubscription, error) {
	path := fmt.Sprintf("/webhook-subscriptions/%s", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, pauseRequest{Paused: paused})
	if err != nil {
		return nil, fmt.Errorf("updating webhook subscription: %w", err)
	}

	var subscription dwolla.WebhookSubscription

	err = json.Unmarshal(resp.Body, &subscription)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook subscription response: %w", err)
	}

	return &subscription, nil
}
