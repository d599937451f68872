package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// RootClient implements dwolla.RootClient.
type RootClient struct {
	httpClient *transport.Client
}

// NewRootClient creates a new root client.
func NewRootClient(httpClient *transport.Client) *RootClient {
	return &RootClient{httpClient: httpClient}
}

// Get implements dwolla.RootClient.Get.
func (c *RootClient) Get(ctx context.Context) (*dwolla.Root, error) {
	resp, err := c.httpClient.Get(ctx, "/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting root: %w", err)
	}

	var root dwolla.Root

	err = json.Unmarshal(resp.Body, &root)
	if err != nil {
		return nil, fmt.Errorf("parsing root response: %w", err)
	}

	return &root, nil
}
