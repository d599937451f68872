package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

func TestAccountsClient_Get(t *testing.T) {
	tests := []TestGetOperation[dwolla.Account]{
		{
			Name:         "found",
			ID:           "account-id",
			ExpectedPath: "/accounts/account-id",
			StatusCode:   http.StatusOK,
			Response: &dwolla.Account{
				ID:   "account-id",
				Name: "Acme Payments",
			},
		},
		{
			Name:         "forbidden",
			ID:           "other-account",
			ExpectedPath: "/accounts/other-account",
			StatusCode:   http.StatusForbidden,
			WantErr:      true,
			ErrMessage:   "getting account",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*dwolla.Account, error) {
		return c.Accounts().Get
	})
}
