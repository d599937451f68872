package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// MassPaymentsClient implements dwolla.MassPaymentsClient.
type MassPaymentsClient struct {
	httpClient *transport.Client
}

// NewMassPaymentsClient creates a new mass payments client.
func NewMassPaymentsClient(httpClient *transport.Client) *MassPaymentsClient {
	return &MassPaymentsClient{httpClient: httpClient}
}

// Create implements dwolla.MassPaymentsClient.Create.
func (c *MassPaymentsClient) Create(ctx context.Context, request *dwolla.MassPaymentCreateRequest, idempotencyKey string) (*dwolla.MassPayment, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{dwolla.IdempotencyKeyHeader: idempotencyKey}
	}

	resp, err := c.httpClient.PostWithHeaders(ctx, "/mass-payments", request, headers)
	if err != nil {
		return nil, fmt.Errorf("creating mass payment: %w", err)
	}

	return followCreated[dwolla.MassPayment](ctx, c.httpClient, resp)
}

// Get implements dwolla.MassPaymentsClient.Get.
func (c *MassPaymentsClient) Get(ctx context.Context, massPaymentID string) (*dwolla.MassPayment, error) {
	path := fmt.Sprintf("/mass-payments/%s", massPaymentID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting mass payment: %w", err)
	}

	var payment dwolla.MassPayment

	err = json.Unmarshal(resp.Body, &payment)
	if err != nil {
		return nil, fmt.Errorf("parsing mass payment response: %w", err)
	}

	return &payment, nil
}

// UpdateStatus implements dwolla.MassPaymentsClient.UpdateStatus.
func (c *MassPaymentsClient) UpdateStatus(ctx context.Context, massPaymentID, status string) (*dwolla.MassPayment, error) {
	path := fmt.Sprintf("/mass-payments/%s", massPaymentID)

	resp, err := c.httpClient.Post(ctx, path, statusUpdateRequest{Status: status})
	if err != nil {
		return nil, fmt.Errorf("updating mass payment status: %w", err)
	}

	var payment dwolla.MassPayment

	err = json.Unmarshal(resp.Body, &payment)
	if err != nil {
		return nil, fmt.Errorf("parsing mass payment response: %w", err)
	}

	return &payment, nil
}

// ListItems implements dwolla.MassPaymentsClient.ListItems.
func (c *MassPaymentsClient) ListItems(ctx context.Context, massPaymentID string, params *dwolla.QueryParams) (*dwolla.MassPaymentItemList, error) {
	path := fmt.Sprintf("/mass-payments/%s/items", massPaymentID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing mass payment items: %w", err)
	}

	var list dwolla.MassPaymentItemList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing mass payment item list response: %w", err)
	}

	return &list, nil
}

// GetItem implements dwolla.MassPaymentsClient.GetItem.
func (c *MassPaymentsClient) GetItem(ctx context.Context, itemID string) (*dwolla.MassPaymentItem, error) {
	path := fmt.Sprintf("/mass-payment-items/%s", itemID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting mass payment item: %w", err)
	}

	var item dwolla.MassPaymentItem

	err = json.Unmarshal(resp.Body, &item)
	if err != nil {
		return nil, fmt.Errorf("parsing mass payment item response: %w", err)
	}

	return &item, nil
}
