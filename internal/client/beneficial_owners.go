package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// BeneficialOwnersClient implements dwolla.BeneficialOwnersClient.
type BeneficialOwnersClient struct {
	httpClient *transport.Client
}

// NewBeneficialOwnersClient creates a new beneficial owners client.
func NewBeneficialOwnersClient(httpClient *transport.Client) *BeneficialOwnersClient {
	return &BeneficialOwnersClient{httpClient: httpClient}
}

// CreateForCustomer implements dwolla.BeneficialOwnersClient.CreateForCustomer.
func (c *BeneficialOwnersClient) CreateForCustomer(ctx context.Context, customerID string, request *dwolla.BeneficialOwnerCreateRequest) (*dwolla.BeneficialOwner, error) {
	path := fmt.Sprintf("/customers/%s/beneficial-owners", customerID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating beneficial owner: %w", err)
	}

	return followCreated[dwolla.BeneficialOwner](ctx, c.httpClient, resp)
}

// Get implements dwolla.BeneficialOwnersClient.Get.
func (c *BeneficialOwnersClient) Get(ctx context.Context, ownerID string) (*dwolla.BeneficialOwner, error) {
	path := fmt.Sprintf("/beneficial-owners/%s", ownerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting beneficial owner: %w", err)
	}

	var owner dwolla.BeneficialOwner

	err = json.Unmarshal(resp.Body, &owner)
	if err != nil {
		return nil, fmt.Errorf("parsing beneficial owner response: %w", err)
	}

	return &owner, nil
}

// Update implements dwolla.BeneficialOwnersClient.Update.
func (c *BeneficialOwnersClient) Update(ctx context.Context, ownerID string, request *dwolla.BeneficialOwnerCreateRequest) (*dwolla.BeneficialOwner, error) {
	path := fmt.Sprintf("/beneficial-owners/%s", ownerID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating beneficial owner: %w", err)
	}

	var owner dwolla.BeneficialOwner

	err = json.Unmarshal(resp.Body, &owner)
	if err != nil {
		return nil, fmt.Errorf("parsing beneficial owner response: %w", err)
	}

	return &owner, nil
}

// Delete implements dwolla.BeneficialOwnersClient.Delete.
func (c *BeneficialOwnersClient) Delete(ctx context.Context, ownerID string) error {
	path := fmt.Sprintf("/beneficial-owners/%s", ownerID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting beneficial owner: %w", err)
	}

	return nil
}

// ListForCustomer implements dwolla.BeneficialOwnersClient.ListForCustomer.
func (c *BeneficialOwnersClient) ListForCustomer(ctx context.Context, customerID string) (*dwolla.BeneficialOwnerList, error) {
	path := fmt.Sprintf("/customers/%s/beneficial-owners", customerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing beneficial owners: %w", err)
	}

	var list dwolla.BeneficialOwnerList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing beneficial owner list response: %w", err)
	}

	return &list, nil
}

// GetOwnership implements dwolla.BeneficialOwnersClient.GetOwnership.
func (c *BeneficialOwnersClient) GetOwnership(ctx context.Context, customerID string) (*dwolla.BeneficialOwnership, error) {
	path := fmt.Sprintf("/customers/%s/beneficial-ownership", customerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting beneficial ownership: %w", err)
	}

	var ownership dwolla.BeneficialOwnership

	err = json.Unmarshal(resp.Body, &ownership)
	if err != nil {
		return nil, fmt.Errorf("parsing beneficial ownership response: %w", err)
	}

	return &ownership, nil
}

// CertifyOwnership implements dwolla.BeneficialOwnersClient.CertifyOwnership.
func (c *BeneficialOwnersClient) CertifyOwnership(ctx context.Context, customerID string) (*dwolla.BeneficialOwnership, error) {
	path := fmt.Sprintf("/customers/%s/beneficial-ownership", customerID)

	resp, err := c.httpClient.Post(ctx, path, statusUpdateRequest{Status: dwolla.CertificationStatusCertified})
	if err != nil {
		return nil, fmt.Errorf("certifying beneficial ownership: %w", err)
	}

	var ownership dwolla.BeneficialOwnership

	err = json.Unmarshal(resp.Body, &ownership)
	if err != nil {
		return nil, fmt.Errorf("parsing beneficial ownership response: %w", err)
	}

	return &ownership, nil
}
