package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

func (m *MockTokenManager) RefreshToken(ctx context.Context) error {
	return nil
}

func (m *MockTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/customers", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/vnd.dwolla.v1.hal+json", request.Header.Get("Accept"))

			response := map[string]string{"id": "customer-id", "firstName": "Jane"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{token: "test-token"}
		client := transport.NewClient(server.URL, tokenManager)

		req := &transport.Request{
			Method: "GET",
			Path:   "/customers",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "customer-id", result["id"])
		assert.Equal(t, "Jane", result["firstName"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/customers", request.URL.Path)
			assert.Equal(t, "limit=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := transport.NewClient(server.URL, nil)

		req := &transport.Request{
			Method: "GET",
			Path:   "/customers",
			Query:  url.Values{"limit": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/vnd.dwolla.v1.hal+json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Jane", body["firstName"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := transport.NewClient(server.URL, nil)

		req := &transport.Request{
			Method: "POST",
			Path:   "/customers",
			Body:   map[string]string{"firstName": "Jane"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("absolute URL passes through", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/customers/abc", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		// A different base URL proves the absolute path wins.
		client := transport.NewClient("https://api.invalid", nil)

		resp, err := client.Get(context.Background(), server.URL+"/customers/abc", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Request-Id", "some-id")
			writer.WriteHeader(http.StatusNotFound)

			response := dwolla.ErrorResponse{
				Code:    "NotFound",
				Message: "The requested resource was not found.",
			}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := transport.NewClient(server.URL, nil)

		req := &transport.Request{
			Method: "GET",
			Path:   "/customers/missing",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, "some-id", resp.RequestID)

		var apiErr *dwolla.APIError

		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "some-id", apiErr.RequestID)
		assert.Equal(t, "NotFound", apiErr.Code())
		assert.Equal(t, `API Error, Resource="GET `+server.URL+`/customers/missing", RequestId="some-id"`, err.Error())
	})

	t.Run("error response with unparseable body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("<html>Bad Gateway</html>"))
		}))
		defer server.Close()

		client := transport.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/customers", nil)
		require.Error(t, err)
		assert.Equal(t, 502, resp.StatusCode)

		var apiErr *dwolla.APIError

		require.True(t, errors.As(err, &apiErr))
		assert.Nil(t, apiErr.Response)
		assert.Empty(t, apiErr.Code())
		assert.Equal(t, []byte("<html>Bad Gateway</html>"), apiErr.RawBody)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := transport.NewClient(server.URL, nil)

		req := &transport.Request{
			Method: "GET",
			Path:   "/customers",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("token manager failure", func(t *testing.T) {
		t.Parallel()

		tokenManager := &MockTokenManager{err: errors.New("no valid credentials available")}
		client := transport.NewClient("https://api.invalid", tokenManager)

		resp, err := client.Get(context.Background(), "/customers", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "getting token")
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := transport.NewClient(server.URL, nil, transport.WithLogger(logger), transport.WithDebug(true))

		req := &transport.Request{
			Method: "GET",
			Path:   "/customers",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*transport.Client, context.Context) (*transport.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *transport.Client, ctx context.Context) (*transport.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *transport.Client, ctx context.Context) (*transport.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *transport.Client, ctx context.Context) (*transport.Response, error) {
				return c.Delete(ctx, "/test", nil)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := transport.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_PostAuth(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/token", request.URL.Path)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", request.Header.Get("Accept"))

		var body map[string]string

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "client_credentials", body["grant_type"])

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"access_token": "tok",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	client := transport.NewClient(server.URL, nil)

	resp, err := client.PostAuth(context.Background(), "/token", map[string]string{
		"client_id":     "id",
		"client_secret": "secret",
		"grant_type":    "client_credentials",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClient_PostRaw(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "multipart/form-data; boundary=test", request.Header.Get("Content-Type"))
		writer.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := transport.NewClient(server.URL, nil)

	resp, err := client.PostRaw(context.Background(), "/customers/abc/documents", []byte("raw-bytes"), "multipart/form-data; boundary=test")
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestClient_DoesNotRetry(t *testing.T) {
	t.Parallel()

	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts++

		writer.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := transport.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/test", nil)
	require.Error(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, 1, attempts)
}

func TestClient_WithHTTPClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	injected := &http.Client{Timeout: 5 * time.Second}
	client := transport.NewClient(server.URL, nil, transport.WithHTTPClient(injected))

	resp, err := client.Get(context.Background(), "/test", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClient_UserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "custom-agent/2.0", request.Header.Get("User-Agent"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := transport.NewClient(server.URL, nil, transport.WithUserAgent("custom-agent/2.0"))

	_, err := client.Get(context.Background(), "/test", nil)
	require.NoError(t, err)
}
