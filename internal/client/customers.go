package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// CustomersClient implements dwolla.CustomersClient.
type CustomersClient struct {
	httpClient *transport.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *transport.Client) *CustomersClient {
	return &CustomersClient{httpClient: httpClient}
}

// Create implements dwolla.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *dwolla.CustomerCreateRequest) (*dwolla.Customer, error) {
	resp, err := c.httpClient.Post(ctx, "/customers", request)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return followCreated[dwolla.Customer](ctx, c.httpClient, resp)
}

// Get implements dwolla.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, customerID string) (*dwolla.Customer, error) {
	path := fmt.Sprintf("/customers/%s", customerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	var customer dwolla.Customer

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// List implements dwolla.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *dwolla.QueryParams) (*dwolla.CustomerList, error) {
	resp, err := c.httpClient.Get(ctx, "/customers", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	var list dwolla.CustomerList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing customer list response: %w", err)
	}

	return &list, nil
}

// Update implements dwolla.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, customerID string, request *dwolla.CustomerUpdateRequest) (*dwolla.Customer, error) {
	path := fmt.Sprintf("/customers/%s", customerID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	var customer dwolla.Customer

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// Deactivate implements dwolla.CustomersClient.Deactivate.
func (c *CustomersClient) Deactivate(ctx context.Context, customerID string) (*dwolla.Customer, error) {
	return c.updateStatus(ctx, customerID, dwolla.CustomerStatusDeactivated)
}

// Reactivate implements dwolla.CustomersClient.Reactivate.
func (c *CustomersClient) Reactivate(ctx context.Context, customerID string) (*dwolla.Customer, error) {
	return c.updateStatus(ctx, customerID, dwolla.CustomerStatusReactivated)
}

// Suspend implements dwolla.CustomersClient.Suspend.
func (c *CustomersClient) Suspend(ctx context.Context, customerID string) (*dwolla.Customer, error) {
	return c.updateStatus(ctx, customerID, dwolla.CustomerStatusSuspended)
}

// updateStatus posts a bare status change for the customer.
func (c *CustomersClient) updateStatus(ctx context.Context, customerID, status string) (*dwolla.Customer, error) {
	path := fmt.Sprintf("/customers/%s", customerID)

	resp, err := c.httpClient.Post(ctx, path, statusUpdateRequest{Status: status})
	if err != nil {
		return nil, fmt.Errorf("updating customer status: %w", err)
	}

	var customer dwolla.Customer

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}
