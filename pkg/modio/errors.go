package modio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a structured error envelope returned by the API.
// Status mirrors the HTTP status, Code is the service reference code
// from the envelope, and Errors optionally carries per-field validation
// messages for 422 responses. RetryAfter is populated on 429 responses
// from the X-Ratelimit-RetryAfter header.
type APIError struct {
	Status     int               `json:"status"           yaml:"status"`
	Code       int               `json:"code"             yaml:"code"`
	Message    string            `json:"message"          yaml:"message"`
	Errors     map[string]string `json:"errors,omitempty" yaml:"errors,omitempty"`
	RetryAfter int               `json:"-"                yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s (code: %d, fields: %v)", e.Message, e.Code, e.Errors)
	}

	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// responseError is the wire form of the error envelope.
type responseError struct {
	Error struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	} `json:"error"`
}

// ParseAPIError decodes an error envelope from a response body. The
// second return value is false when the body does not carry an envelope
// (connection-level failures and proxies produce such bodies).
func ParseAPIError(status int, data []byte) (*APIError, bool) {
	var envelope responseError

	err := json.Unmarshal(data, &envelope)
	if err != nil || envelope.Error.Code == 0 {
		return nil, false
	}

	return &APIError{
		Status:  status,
		Code:    envelope.Error.Code,
		Message: envelope.Error.Message,
		Errors:  envelope.Error.Errors,
	}, true
}

// Client-originated errors. These are raised before any network call.
var (
	// ErrClientClosed is returned by every operation after Close.
	ErrClientClosed = errors.New("client is closed")

	// ErrSecurityCodeLength rejects email exchange codes that are not
	// exactly five characters long.
	ErrSecurityCodeLength = errors.New("security code must be exactly 5 characters")

	// ErrReportResourceType rejects reports against anything other than
	// a game, mod, or user.
	ErrReportResourceType = errors.New("reports can only target games, mods, or users")

	// ErrMeFileImmutable rejects edit and delete calls on files that
	// were obtained through /me/files and so carry no game context.
	ErrMeFileImmutable = errors.New("files obtained through /me/files cannot be edited or deleted")

	// ErrCredentialsRequired is returned when a client is constructed
	// with neither an API key nor an access token.
	ErrCredentialsRequired = errors.New("an API key or an access token is required")

	// ErrConfigRequired is returned when no configuration is supplied.
	ErrConfigRequired = errors.New("config is required")
)

// statusIs reports whether err is an APIError with the given status.
func statusIs(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	return false
}

// IsBadRequest checks if the error is a 400 response.
func IsBadRequest(err error) bool {
	return statusIs(err, http.StatusBadRequest)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 response.
func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsMethodNotAllowed checks if the error is a 405 response.
func IsMethodNotAllowed(err error) bool {
	return statusIs(err, http.StatusMethodNotAllowed)
}

// IsNotAcceptable checks if the error is a 406 response.
func IsNotAcceptable(err error) bool {
	return statusIs(err, http.StatusNotAcceptable)
}

// IsGone checks if the error is a 410 response.
func IsGone(err error) bool {
	return statusIs(err, http.StatusGone)
}

// IsUnprocessable checks if the error is a 422 response. The field
// errors, when present, are on APIError.Errors.
func IsUnprocessable(err error) bool {
	return statusIs(err, http.StatusUnprocessableEntity)
}

// IsRateLimited checks if the error is a 429 response. The cool-down in
// seconds is on APIError.RetryAfter.
func IsRateLimited(err error) bool {
	return statusIs(err, http.StatusTooManyRequests)
}
