package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// EventsClient implements dwolla.EventsClient.
type EventsClient struct {
	httpClient *transport.Client
}

// NewEventsClient creates a new events client.
func NewEventsClient(httpClient *transport.Client) *EventsClient {
	return &EventsClient{httpClient: httpClient}
}

// List implements dwolla.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, params *dwolla.QueryParams) (*dwolla.EventList, error) {
	resp, err := c.httpClient.Get(ctx, "/events", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	var list dwolla.EventList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing event list response: %w", err)
	}

	return &list, nil
}

// Get implements dwolla.EventsClient.Get.
func (c *EventsClient) Get(ctx context.Context, eventID string) (*dwolla.Event, error) {
	path := fmt.Sprintf("/events/%s", eventID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting event: %w", err)
	}

	var event dwolla.Event

	err = json.Unmarshal(resp.Body, &event)
	if err != nil {
		return nil, fmt.Errorf("parsing event response: %w", err)
	}

	return &event, nil
}
