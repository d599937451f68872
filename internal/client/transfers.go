package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// TransfersClient implements dwolla.TransfersClient.
type TransfersClient struct {
	httpClient *transport.Client
}

// NewTransfersClient creates a new transfers client.
func NewTransfersClient(httpClient *transport.Client) *TransfersClient {
	return &TransfersClient{httpClient: httpClient}
}

// Create implements dwolla.TransfersClient.Create.
func (c *TransfersClient) Create(ctx context.Context, request *dwolla.TransferCreateRequest, idempotencyKey string) (*dwolla.Transfer, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{dwolla.IdempotencyKeyHeader: idempotencyKey}
	}

	resp, err := c.httpClient.PostWithHeaders(ctx, "/transfers", request, headers)
	if err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	return followCreated[dwolla.Transfer](ctx, c.httpClient, resp)
}

// Get implements dwolla.TransfersClient.Get.
func (c *TransfersClient) Get(ctx context.Context, transferID string) (*dwolla.Transfer, error) {
	path := fmt.Sprintf("/transfers/%s", transferID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting transfer: %w", err)
	}

	var transfer dwolla.Transfer

	err = json.Unmarshal(resp.Body, &transfer)
	if err != nil {
		return nil, fmt.Errorf("parsing transfer response: %w", err)
	}

	return &transfer, nil
}

// ListForCustomer implements dwolla.TransfersClient.ListForCustomer.
func (c *TransfersClient) ListForCustomer(ctx context.Context, customerID string, params *dwolla.QueryParams) (*dwolla.TransferList, error) {
	path := fmt.Sprintf("/customers/%s/transfers", customerID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}

	var list dwolla.TransferList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing transfer list response: %w", err)
	}

	return &list, nil
}

// Cancel implements dwolla.TransfersClient.Cancel.
func (c *TransfersClient) Cancel(ctx context.Context, transferID string) (*dwolla.Transfer, error) {
	path := fmt.Sprintf("/transfers/%s", transferID)

	resp, err := c.httpClient.Post(ctx, path, statusUpdateRequest{Status: dwolla.TransferStatusCancelled})
	if err != nil {
		return nil, fmt.Errorf("cancelling transfer: %w", err)
	}

	var transfer dwolla.Transfer

	err = json.Unmarshal(resp.Body, &transfer)
	if err != nil {
		return nil, fmt.Errorf("parsing transfer response: %w", err)
	}

	return &transfer, nil
}

// GetFailure implements dwolla.TransfersClient.GetFailure.
func (c *TransfersClient) GetFailure(ctx context.Context, transferID string) (*dwolla.TransferFailure, error) {
	path := fmt.Sprintf("/transfers/%s/failure", transferID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting transfer failure: %w", err)
	}

	var failure dwolla.TransferFailure

	err = json.Unmarshal(resp.Body, &failure)
	if err != nil {
		return nil, fmt.Errorf("parsing transfer failure response: %w", err)
	}

	return &failure, nil
}
