package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

func TestFundingSourcesClient_CreateForCustomer(t *testing.T) {
	tests := []TestCreateOperation[dwolla.FundingSourceCreateRequest, dwolla.FundingSource]{
		{
			Name: "created with location header",
			Request: &dwolla.FundingSourceCreateRequest{
				RoutingNumber:   "222222226",
				AccountNumber:   "123456789",
				BankAccountType: dwolla.BankAccountTypeChecking,
				Name:            "Jane's Checking",
			},
			ExpectedPath: "/customers/customer-id/funding-sources",
			StatusCode:   http.StatusCreated,
			Location:     "/funding-sources/funding-source-id",
			Resource: &dwolla.FundingSource{
				ID:     "funding-source-id",
				Name:   "Jane's Checking",
				Type:   dwolla.FundingSourceTypeBank,
				Status: dwolla.FundingSourceStatusUnverified,
			},
		},
		{
			Name: "duplicate bank account",
			Request: &dwolla.FundingSourceCreateRequest{
				RoutingNumber: "222222226",
				AccountNumber: "123456789",
				Name:          "Jane's Checking",
			},
			ExpectedPath: "/customers/customer-id/funding-sources",
			StatusCode:   http.StatusBadRequest,
			Response: map[string]interface{}{
				"code":    "DuplicateResource",
				"message": "Bank already exists.",
			},
			WantErr:    true,
			ErrMessage: "creating funding source",
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *dwolla.FundingSourceCreateRequest) (*dwolla.FundingSource, error) {
		return func(ctx context.Context, request *dwolla.FundingSourceCreateRequest) (*dwolla.FundingSource, error) {
			return c.FundingSources().CreateForCustomer(ctx, "customer-id", request)
		}
	})
}

func TestFundingSourcesClient_Get(t *testing.T) {
	tests := []TestGetOperation[dwolla.FundingSource]{
		{
			Name:         "found",
			ID:           "funding-source-id",
			ExpectedPath: "/funding-sources/funding-source-id",
			StatusCode:   http.StatusOK,
			Response: &dwolla.FundingSource{
				ID:              "funding-source-id",
				Status:          dwolla.FundingSourceStatusVerified,
				Type:            dwolla.FundingSourceTypeBank,
				BankAccountType: dwolla.BankAccountTypeChecking,
				Name:            "Jane's Checking",
			},
		},
		{
			Name:         "not found",
			ID:           "missing",
			ExpectedPath: "/funding-sources/missing",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "getting funding source",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*dwolla.FundingSource, error) {
		return c.FundingSources().Get
	})
}

func TestFundingSourcesClient_ListForCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/customer-id/funding-sources", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("removed"))

		response := dwolla.FundingSourceList{
			Embedded: map[string][]dwolla.FundingSource{
				"funding-sources": {
					{ID: "funding-source-1", Removed: true},
					{ID: "funding-source-2"},
				},
			},
		}

		w.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := dwolla.NewQueryParams().WithRemoved(true)

	list, err := client.FundingSources().ListForCustomer(context.Background(), "customer-id", params)
	require.NoError(t, err)
	require.Len(t, list.Resources(), 2)
	assert.True(t, list.Resources()[0].Removed)
}

func TestFundingSourcesClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/funding-sources/funding-source-id", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req dwolla.FundingSourceUpdateRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "Jane's Savings", req.Name)

		w.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
		_ = json.NewEncoder(w).Encode(dwolla.FundingSource{ID: "funding-source-id", Name: "Jane's Savings"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	source, err := client.FundingSources().Update(context.Background(), "funding-source-id", &dwolla.FundingSourceUpdateRequest{
		Name: "Jane's Savings",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane's Savings", source.Name)
}

func TestFundingSourcesClient_Remove(t *testing.T) {
	RunStatusUpdateTest(t, "remove", "/funding-sources/funding-source-id",
		map[string]interface{}{"removed": true},
		&dwolla.FundingSource{ID: "funding-source-id", Removed: true},
		func(c *Client) (*dwolla.FundingSource, error) {
			return c.FundingSources().Remove(context.Background(), "funding-source-id")
		})
}

func TestFundingSourcesClient_GetBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/funding-sources/funding-source-id/balance", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		balance := dwolla.Balance{
			Balance: dwolla.Amount{Value: "4616.87", Currency: "USD"},
		}

		w.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
		_ = json.NewEncoder(w).Encode(balance)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	balance, err := client.FundingSources().GetBalance(context.Background(), "funding-source-id")
	require.NoError(t, err)
	assert.Equal(t, "4616.87", balance.Balance.Value)
	assert.Equal(t, "USD", balance.Balance.Currency)
}

func TestFundingSourcesClient_InitiateMicroDeposits(t *testing.T) {
	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			assert.Equal(t, "/funding-sources/funding-source-id/micro-deposits", r.URL.Path)

			deposits := dwolla.MicroDeposits{Status: dwolla.MicroDepositsStatusPending}

			w.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
			_ = json.NewEncoder(w).Encode(deposits)

			return
		}

		assert.Equal(t, "/funding-sources/funding-source-id/micro-deposits", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		w.Header().Set("Location", server.URL+"/funding-sources/funding-source-id/micro-deposits")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	deposits, err := client.FundingSources().InitiateMicroDeposits(context.Background(), "funding-source-id")
	require.NoError(t, err)
	assert.Equal(t, dwolla.MicroDepositsStatusPending, deposits.Status)
}

func TestFundingSourcesClient_GetMicroDeposits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/funding-sources/funding-source-id/micro-deposits", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		deposits := dwolla.MicroDeposits{
			Status: dwolla.MicroDepositsStatusFailed,
			Failure: &dwolla.MicroDepositsFailure{
				Code:        "R03",
				Description: "No Account/Unable to Locate Account",
			},
		}

		w.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
		_ = json.NewEncoder(w).Encode(deposits)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	deposits, err := client.FundingSources().GetMicroDeposits(context.Background(), "funding-source-id")
	require.NoError(t, err)
	assert.Equal(t, dwolla.MicroDepositsStatusFailed, deposits.Status)
	require.NotNil(t, deposits.Failure)
	assert.Equal(t, "R03", deposits.Failure.Code)
}

func TestFundingSourcesClient_VerifyMicroDeposits(t *testing.T) {
	t.Run("correct amounts", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/funding-sources/funding-source-id/micro-deposits", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var req dwolla.MicroDepositsVerifyRequest

			err := json.NewDecoder(r.Body).Decode(&req)
			assert.NoError(t, err)
			assert.Equal(t, "0.03", req.Amount1.Value)
			assert.Equal(t, "0.09", req.Amount2.Value)

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := client.FundingSources().VerifyMicroDeposits(context.Background(), "funding-source-id", &dwolla.MicroDepositsVerifyRequest{
			Amount1: dwolla.Amount{Value: "0.03", Currency: "USD"},
			Amount2: dwolla.Amount{Value: "0.09", Currency: "USD"},
		})
		require.NoError(t, err)
	})

	t.Run("wrong amounts", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"code":    "ValidationError",
				"message": "Wrong amount(s).",
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := client.FundingSources().VerifyMicroDeposits(context.Background(), "funding-source-id", &dwolla.MicroDepositsVerifyRequest{
			Amount1: dwolla.Amount{Value: "0.01", Currency: "USD"},
			Amount2: dwolla.Amount{Value: "0.02", Currency: "USD"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verifying micro-deposits")

		apiErr, ok := dwolla.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, dwolla.ErrorCodeValidationError, apiErr.Code())
	})
}
