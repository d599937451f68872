package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// AccountsClient implements dwolla.AccountsClient.
type AccountsClient struct {
	httpClient *transport.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *transport.Client) *AccountsClient {
	return &AccountsClient{httpClient: httpClient}
}

// Get implements dwolla.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, accountID string) (*dwolla.Account, error) {
	path := fmt.Sprintf("/accounts/%s", accountID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var account dwolla.Account

	err = json.Unmarshal(resp.Body, &account)
	if err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &account, nil
}
