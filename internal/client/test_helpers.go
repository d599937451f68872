package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without token manager for testing
	httpClient := transport.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// TestCreateOperation represents a generic create operation test case.
// When Location is set the server answers the POST with an empty body
// and a Location header, then serves Resource on the follow-up GET;
// otherwise Response is written to the POST directly.
type TestCreateOperation[TRequest, TResponse any] struct {
	Name         string
	Request      *TRequest
	ExpectedPath string
	StatusCode   int
	Location     string
	Response     interface{}
	Resource     *TResponse
	WantErr      bool
	ErrMessage   string
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	WantErr      bool
	ErrMessage   string
}

// RunCreateTests runs a series of create operation tests.
func RunCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TRequest, TResponse],
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			var server *httptest.Server

			server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				if request.Method == http.MethodGet {
					assert.Equal(t, testCase.Location, request.URL.Path)

					writer.Header().Set("Content-Type", "application/json")
					_ = json.NewEncoder(writer).Encode(testCase.Resource)

					return
				}

				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)

				if testCase.Location != "" {
					writer.Header().Set("Location", server.URL+testCase.Location)
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			createFn := createFunc(client)
			result, err := createFn(context.Background(), testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				writer.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.WantErr {
					errorResponse := map[string]interface{}{
						"code":    "NotFound",
						"message": "The requested resource was not found.",
					}
					_ = json.NewEncoder(writer).Encode(errorResponse)
				} else if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			getFn := getFunc(client)
			result, err := getFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodDelete, request.Method)

				writer.WriteHeader(testCase.StatusCode)

				if testCase.WantErr {
					errorResponse := map[string]interface{}{
						"code":    "NotFound",
						"message": "The requested resource was not found.",
					}
					_ = json.NewEncoder(writer).Encode(errorResponse)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			deleteFn := deleteFunc(client)
			err := deleteFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// RunListTest runs a generic list test serving resources under the
// given _embedded key.
func RunListTest[T any](
	t *testing.T,
	testName string,
	expectedPath string,
	embeddedKey string,
	resources []T,
	listFunc func(*Client) func(context.Context) (*dwolla.ListResponse[T], error),
) {
	t.Helper()

	t.Run(testName, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, expectedPath, request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)

			response := dwolla.ListResponse[T]{
				Embedded: map[string][]T{embeddedKey: resources},
				Total:    len(resources),
			}

			writer.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		listFn := listFunc(client)
		result, err := listFn(context.Background())
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, len(resources), result.Total)
		assert.Len(t, result.Resources(), len(resources))
	})
}

// RunStatusUpdateTest runs a test for operations that post a small
// status body and decode the updated resource from the response.
func RunStatusUpdateTest[TResponse any](
	t *testing.T,
	testName string,
	expectedPath string,
	expectedBody map[string]interface{},
	response *TResponse,
	updateFunc func(*Client) (*TResponse, error),
) {
	t.Helper()

	t.Run(testName, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, expectedPath, request.URL.Path)
			assert.Equal(t, http.MethodPost, request.Method)

			var body map[string]interface{}

			err := json.NewDecoder(request.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, expectedBody, body)

			writer.Header().Set("Content-Type", "application/vnd.dwolla.v1.hal+json")
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		result, err := updateFunc(client)
		require.NoError(t, err)
		require.NotNil(t, result)
	})
}
