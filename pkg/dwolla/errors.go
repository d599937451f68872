package dwolla

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	// ErrConfigRequired is returned when a nil config is passed to a
	// client constructor.
	ErrConfigRequired = errors.New("config is required")

	// ErrBaseURLRequired is returned when no API base URL is configured.
	ErrBaseURLRequired = errors.New("base URL is required")

	// ErrNoLocationHeader is returned when a create response carries
	// neither a body nor a Location header to fetch the resource from.
	ErrNoLocationHeader = errors.New("response has no location header")
)

// Machine-readable error codes returned by the API.
const (
	ErrorCodeBadRequest           = "BadRequest"
	ErrorCodeValidationError      = "ValidationError"
	ErrorCodeInvalidCredentials   = "InvalidCredentials"
	ErrorCodeInvalidAccessToken   = "InvalidAccessToken"
	ErrorCodeExpiredAccessToken   = "ExpiredAccessToken"
	ErrorCodeInvalidAccountStatus = "InvalidAccountStatus"
	ErrorCodeInvalidScopes        = "InvalidScopes"
	ErrorCodeForbidden            = "Forbidden"
	ErrorCodeInvalidResourceState = "InvalidResourceState"
	ErrorCodeNotFound             = "NotFound"
	ErrorCodeMethodNotAllowed     = "MethodNotAllowed"
	ErrorCodeInvalidVersion       = "InvalidVersion"
	ErrorCodeServerError          = "ServerError"
	ErrorCodeRequestTimeout       = "RequestTimeout"
	ErrorCodeDuplicateResource    = "DuplicateResource"
)

// ValidationError represents one field-level failure embedded in a
// validation error response.
type ValidationError struct {
	Code    string `json:"code"           yaml:"code"`
	Message string `json:"message"        yaml:"message"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ErrorEmbedded holds the field-level failures of a validation error.
type ErrorEmbedded struct {
	Errors []ValidationError `json:"errors" yaml:"errors"`
}

// ErrorResponse represents the JSON document the API attaches to a
// failed request.
type ErrorResponse struct {
	Code     string         `json:"code"                yaml:"code"`
	Message  string         `json:"message"             yaml:"message"`
	Embedded *ErrorEmbedded `json:"_embedded,omitempty" yaml:"_embedded,omitempty"`
}

// APIError represents a non-2xx response from the API. The transport
// returns it alongside the raw response, so callers can inspect either.
type APIError struct {
	// Method and URL identify the request that failed.
	Method string
	URL    string
	// RequestID is the server-assigned correlation id from the
	// X-Request-Id header, quoted verbatim in support tickets.
	RequestID string
	// StatusCode is the HTTP status of the failed response.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// RawBody is the unparsed response body.
	RawBody []byte
	// Response is the parsed error document, or nil when the body was
	// not recognizable as one.
	Response *ErrorResponse
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API Error, Resource=%q, RequestId=%q", e.Method+" "+e.URL, e.RequestID)
}

// Code returns the machine-readable error code, or "" when the
// response body could not be parsed.
func (e *APIError) Code() string {
	if e.Response == nil {
		return ""
	}

	return e.Response.Code
}

// Message returns the human-readable error description, or "" when the
// response body could not be parsed.
func (e *APIError) Message() string {
	if e.Response == nil {
		return ""
	}

	return e.Response.Message
}

// ValidationErrors returns the field-level failures of a validation
// error, or nil for any other kind of error.
func (e *APIError) ValidationErrors() []ValidationError {
	if e.Response == nil || e.Response.Embedded == nil {
		return nil
	}

	return e.Response.Embedded.Errors
}

// ParseErrorResponse parses an error document from a response body.
// It returns nil when the body is not a recognizable error document,
// in which case callers fall back to the raw body.
func ParseErrorResponse(body []byte) *ErrorResponse {
	var parsed ErrorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}

	if parsed.Code == "" && parsed.Message == "" {
		return nil
	}

	return &parsed
}

// AsAPIError unwraps err into an *APIError if one is in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsNotFoundError returns true when err represents a 404 response.
func IsNotFoundError(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && (apiErr.StatusCode == http.StatusNotFound || apiErr.Code() == ErrorCodeNotFound)
}

// IsUnauthorizedError returns true when err represents a 401 response,
// such as an expired or invalid access token.
func IsUnauthorizedError(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbiddenError returns true when err represents a 403 response.
func IsForbiddenError(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.StatusCode == http.StatusForbidden
}

// IsValidationError returns true when err carries field-level
// validation failures.
func IsValidationError(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.Code() == ErrorCodeValidationError
}
