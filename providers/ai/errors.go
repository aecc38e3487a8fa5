package ai

import (
	"errors"
	"fmt"
)

// ErrorKind categorises a provider failure so callers can decide on retry or
// surfacing behaviour by matching an enumerated value rather than parsing
// error message text.
type ErrorKind int

const (
	// KindUnknown covers failures that fit no other category.
	KindUnknown ErrorKind = iota

	// KindNetwork is a transport-level failure: connection refused, DNS
	// resolution error, broken pipe, and similar conditions where no HTTP
	// status was received.
	KindNetwork

	// KindTimeout is a request that exceeded its deadline, either via the
	// HTTP client timeout or context expiry.
	KindTimeout

	// KindServer is an HTTP 5xx response from the provider.
	KindServer

	// KindRateLimit is an HTTP 429 response.
	KindRateLimit

	// KindAuth is a rejected credential. Providers signal this with 401/403,
	// and Gemini in particular answers an invalid API key with a plain 400.
	KindAuth

	// KindDecode is a syntactically broken provider response body.
	KindDecode
)

// String returns the snake_case name of the kind, suitable for log attributes.
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindServer:
		return "server"
	case KindRateLimit:
		return "rate_limit"
	case KindAuth:
		return "auth"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Retryable reports whether an error of this kind is worth retrying.
// Transient conditions (network faults, timeouts, 5xx, rate limits) are;
// credential rejections and malformed bodies are not.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindNetwork, KindTimeout, KindServer, KindRateLimit:
		return true
	default:
		return false
	}
}

// APIError is the structured error returned by the HTTP layer for every
// provider failure. Kind drives classification, StatusCode is the HTTP
// status when one was received (zero otherwise), and Err is the underlying
// cause available through [errors.Unwrap].
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider error (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider error (%s): %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf extracts the ErrorKind from err, digging through wrapping. Errors
// that do not carry an *APIError anywhere in their chain report KindUnknown.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// Retryable reports whether err represents a transient provider failure.
// It is the default retry predicate used by the analyzer's retry layer.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	return KindOf(err).Retryable()
}

// KindFromStatus maps an HTTP status code to an ErrorKind.
func KindFromStatus(status int) ErrorKind {
	switch {
	case status == 429:
		return KindRateLimit
	case status >= 500:
		return KindServer
	case status == 400 || status == 401 || status == 403:
		return KindAuth
	default:
		return KindUnknown
	}
}
