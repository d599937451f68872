package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// removeRequest soft-deletes a funding source.
type removeRequest struct {
	Removed bool `json:"removed"`
}

// FundingSourcesClient implements dwolla.FundingSourcesClient.
type FundingSourcesClient struct {
	httpClient *transport.Client
}

// NewFundingSourcesClient creates a new funding sources client.
func NewFundingSourcesClient(httpClient *transport.Client) *FundingSourcesClient {
	return &FundingSourcesClient{httpClient: httpClient}
}

// CreateForCustomer implements dwolla.FundingSourcesClient.CreateForCustomer.
func (c *FundingSourcesClient) CreateForCustomer(ctx context.Context, customerID string, request *dwolla.FundingSourceCreateRequest) (*dwolla.FundingSource, error) {
	path := fmt.Sprintf("/customers/%s/funding-sources", customerID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating funding source: %w", err)
	}

	return followCreated[dwolla.FundingSource](ctx, c.httpClient, resp)
}

// Get implements dwolla.FundingSourcesClient.Get.
func (c *FundingSourcesClient) Get(ctx context.Context, fundingSourceID string) (*dwolla.FundingSource, error) {
	path := fmt.Sprintf("/funding-sources/%s", fundingSourceID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting funding source: %w", err)
	}

	var source dwolla.FundingSource

	err = json.Unmarshal(resp.Body, &source)
	if err != nil {
		return nil, fmt.Errorf("parsing funding source response: %w", err)
	}

	return &source, nil
}

// ListForCustomer implements dwolla.FundingSourcesClient.ListForCustomer.
func (c *FundingSourcesClient) ListForCustomer(ctx context.Context, customerID string, params *dwolla.QueryParams) (*dwolla.FundingSourceList, error) {
	path := fmt.Sprintf("/customers/%s/funding-sources", customerID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing funding sources: %w", err)
	}

	var list dwolla.FundingSourceList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing funding source list response: %w", err)
	}

	return &list, nil
}

// Update implements dwolla.FundingSourcesClient.Update.
func (c *FundingSourcesClient) Update(ctx context.Context, fundingSourceID string, request *dwolla.FundingSourceUpdateRequest) (*dwolla.FundingSource, error) {
	path := fmt.Sprintf("/funding-sources/%s", fundingSourceID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating funding source: %w", err)
	}

	var source dwolla.FundingSource

	err = json.Unmarshal(resp.Body, &source)
	if err != nil {
		return nil, fmt.Errorf("parsing funding source response: %w", err)
	}

	return &source, nil
}

// Remove implements dwolla.FundingSourcesClient.Remove.
func (c *FundingSourcesClient) Remove(ctx context.Context, fundingSourceID string) (*dwolla.FundingSource, error) {
	path := fmt.Sprintf("/funding-sources/%s", fundingSourceID)

	resp, err := c.httpClient.Post(ctx, path, removeRequest{Removed: true})
	if err != nil {
		return nil, fmt.Errorf("removing funding source: %w", err)
	}

	var source dwolla.FundingSource

	err = json.Unmarshal(resp.Body, &source)
	if err != nil {
		return nil, fmt.Errorf("parsing funding source response: %w", err)
	}

	return &source, nil
}

// GetBalance implements dwolla.FundingSourcesClient.GetBalance.
func (c *FundingSourcesClient) GetBalance(ctx context.Context, fundingSourceID string) (*dwolla.Balance, error) {
	path := fmt.Sprintf("/funding-sources/%s/balance", fundingSourceID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}

	var balance dwolla.Balance

	err = json.Unmarshal(resp.Body, &balance)
	if err != nil {
		return nil, fmt.Errorf("parsing balance response: %w", err)
	}

	return &balance, nil
}

// InitiateMicroDeposits implements dwolla.FundingSourcesClient.InitiateMicroDeposits.
func (c *FundingSourcesClient) InitiateMicroDeposits(ctx context.Context, fundingSourceID string) (*dwolla.MicroDeposits, error) {
	path := fmt.Sprintf("/funding-sources/%s/micro-deposits", fundingSourceID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("initiating micro-deposits: %w", err)
	}

	return followCreated[dwolla.MicroDeposits](ctx, c.httpClient, resp)
}

// GetMicroDeposits implements dwolla.FundingSourcesClient.GetMicroDeposits.
func (c *FundingSourcesClient) GetMicroDeposits(ctx context.Context, fundingSourceID string) (*dwolla.MicroDeposits, error) {
	path := fmt.Sprintf("/funding-sources/%s/micro-deposits", fundingSourceID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting micro-deposits: %w", err)
	}

	var deposits dwolla.MicroDeposits

	err = json.Unmarshal(resp.Body, &deposits)
	if err != nil {
		return nil, fmt.Errorf("parsing micro-deposits response: %w", err)
	}

	return &deposits, nil
}

// VerifyMicroDeposits implements dwolla.FundingSourcesClient.VerifyMicroDeposits.
func (c *FundingSourcesClient) VerifyMicroDeposits(ctx context.Context, fundingSourceID string, request *dwolla.MicroDepositsVerifyRequest) error {
	path := fmt.Sprintf("/funding-sources/%s/micro-deposits", fundingSourceID)

	_, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return fmt.Errorf("verifying micro-deposits: %w", err)
	}

	return nil
}
