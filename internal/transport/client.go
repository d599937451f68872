// Package transport implements the HTTP layer shared by all resource
// clients. It builds requests, injects bearer tokens, and turns non-2xx
// responses into typed errors. It never retries; retry policy belongs
// to the caller, who can inject a retrying http.Client when needed.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/dwolla-client/internal/auth"
	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

const defaultUserAgent = "dwolla-client-go/1.0.0"

// Logger defines the logging interface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method string

	// Path is relative to the base URL, or absolute so HAL links can be
	// followed directly.
	Path string

	Query url.Values

	// Body is JSON-encoded. Ignored when Raw is set.
	Body interface{}

	// Raw carries a pre-encoded body, such as a multipart upload.
	Raw []byte

	// Headers are merged in last and may override the defaults.
	Headers map[string]string

	// ContentType overrides the media type of bodied requests. Empty
	// defaults to the HAL media type.
	ContentType string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte

	// RequestID is the server-assigned correlation id from the
	// X-Request-Id header.
	RequestID string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying HTTP client. This is the
// injection point for custom timeouts, proxies, pooling, or a
// caller-owned retry policy.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// Client is the HTTP transport shared by all resource clients.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       Logger
	debug        bool
}

// NewClient creates a transport rooted at baseURL. tokenManager may be
// nil for unauthenticated requests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: constants.DefaultHTTPTimeout},
		tokenManager: tokenManager,
		userAgent:    defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. Non-2xx responses return both the response
// and a *dwolla.APIError, so callers can inspect either.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req.Path, req.Query)

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.HALContentType)
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// The body encoder picks the content type unless the caller already
	// set one explicitly.
	if contentType != "" && httpReq.Header.Get(constants.HeaderContentType) == "" {
		httpReq.Header.Set(constants.HeaderContentType, contentType)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		RequestID:  httpResp.Header.Get(constants.HeaderRequestID),
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":     resp.StatusCode,
			"url":        fullURL,
			"request_id": resp.RequestID,
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, c.apiError(req.Method, fullURL, resp)
	}

	return resp, nil
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post executes a POST request with a HAL JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// PostWithHeaders executes a POST request with extra headers, such as
// Idempotency-Key.
func (c *Client) PostWithHeaders(ctx context.Context, path string, body interface{}, headers map[string]string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    body,
		Headers: headers,
	})
}

// PostAuth executes a POST request against the token endpoint, which
// speaks plain JSON rather than HAL.
func (c *Client) PostAuth(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        body,
		ContentType: constants.JSONContentType,
		Headers: map[string]string{
			constants.HeaderAccept: constants.JSONContentType,
		},
	})
}

// PostRaw executes a POST request with a pre-encoded body, used for
// multipart uploads.
func (c *Client) PostRaw(ctx context.Context, path string, raw []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Raw:         raw,
		ContentType: contentType,
	})
}

// Delete executes a DELETE request. body may be nil.
func (c *Client) Delete(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
		Body:   body,
	})
}

// buildURL joins path to the base URL. Absolute paths pass through
// untouched so links lifted from HAL documents can be followed.
func (c *Client) buildURL(path string, query url.Values) string {
	var fullURL string

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		fullURL = path
	} else {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		fullURL = c.baseURL + path
	}

	if len(query) > 0 {
		separator := "?"
		if strings.Contains(fullURL, "?") {
			separator = "&"
		}

		fullURL += separator + query.Encode()
	}

	return fullURL
}

func encodeBody(req *Request) (io.Reader, string, error) {
	if req.Raw != nil {
		return bytes.NewReader(req.Raw), req.ContentType, nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encoding request body: %w", err)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = constants.HALContentType
	}

	return bytes.NewReader(data), contentType, nil
}

func (c *Client) apiError(method, fullURL string, resp *Response) error {
	return &dwolla.APIError{
		Method:     method,
		URL:        fullURL,
		RequestID:  resp.RequestID,
		StatusCode: resp.StatusCode,
		Header:     resp.Headers,
		RawBody:    resp.Body,
		Response:   dwolla.ParseErrorResponse(resp.Body),
	}
}
