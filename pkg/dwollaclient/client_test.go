package dwollaclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwollaclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &dwolla.Config{
			BaseURL: "https://api-sandbox.dwolla.com",
		}

		client, err := dwollaclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := dwollaclient.New(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, dwolla.ErrConfigRequired)
	})

	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		_, err := dwollaclient.New(context.Background(), &dwolla.Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, dwolla.ErrBaseURLRequired)
	})

	t.Run("normalizes base URL", func(t *testing.T) {
		t.Parallel()

		config := &dwolla.Config{
			BaseURL: "api-sandbox.dwolla.com/",
		}

		client, err := dwollaclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://api-sandbox.dwolla.com", config.BaseURL)
	})
}

func TestNewSandbox(t *testing.T) {
	t.Parallel()

	client, err := dwollaclient.NewSandbox(context.Background(), "app-key", "app-secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewProduction(t *testing.T) {
	t.Parallel()

	client, err := dwollaclient.NewProduction(context.Background(), "app-key", "app-secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := dwollaclient.NewWithToken(context.Background(), "https://api-sandbox.dwolla.com", "test-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/customers/customer-id":
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/vnd.dwolla.v1.hal+json", request.Header.Get("Accept"))

			writer.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
			_ = json.NewEncoder(writer).Encode(dwolla.Customer{
				ID:        "customer-id",
				FirstName: "Jane",
				LastName:  "Merchant",
				Status:    dwolla.CustomerStatusVerified,
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := dwollaclient.NewWithToken(context.Background(), server.URL, "test-token")
	require.NoError(t, err)

	customer, err := client.Customers().Get(context.Background(), "customer-id")
	require.NoError(t, err)
	assert.Equal(t, "Jane", customer.FirstName)
	assert.Equal(t, dwolla.CustomerStatusVerified, customer.Status)
}
