package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// BusinessClassificationsClient implements dwolla.BusinessClassificationsClient.
type BusinessClassificationsClient struct {
	httpClient *transport.Client
}

// NewBusinessClassificationsClient creates a new business classifications client.
func NewBusinessClassificationsClient(httpClient *transport.Client) *BusinessClassificationsClient {
	return &BusinessClassificationsClient{httpClient: httpClient}
}

// List implements dwolla.BusinessClassificationsClient.List.
func (c *BusinessClassificationsClient) List(ctx context.Context) (*dwolla.BusinessClassificationList, error) {
	resp, err := c.httpClient.Get(ctx, "/business-classifications", nil)
	if err != nil {
		return nil, fmt.Errorf("listing business classifications: %w", err)
	}

	var list dwolla.BusinessClassificationList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing business classification list response: %w", err)
	}

	return &list, nil
}

// Get implements dwolla.BusinessClassificationsClient.Get.
func (c *BusinessClassificationsClient) Get(ctx context.Context, classificationID string) (*dwolla.BusinessClassification, error) {
	path := fmt.Sprintf("/business-classifications/%s", classificationID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting business classification: %w", err)
	}

	var classification dwolla.BusinessClassification

	err = json.Unmarshal(resp.Body, &classification)
	if err != nil {
		return nil, fmt.Errorf("parsing business classification response: %w", err)
	}

	return &classification, nil
}
