package ai

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestErrorKind_String verifies the snake_case names used in log attributes.
func TestErrorKind_String(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindNetwork, "network"},
		{KindTimeout, "timeout"},
		{KindServer, "server"},
		{KindRateLimit, "rate_limit"},
		{KindAuth, "auth"},
		{KindDecode, "decode"},
		{ErrorKind(99), "unknown"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

// TestErrorKind_Retryable verifies the transient/terminal split.
func TestErrorKind_Retryable(t *testing.T) {
	retryable := []ErrorKind{KindNetwork, KindTimeout, KindServer, KindRateLimit}
	terminal := []ErrorKind{KindUnknown, KindAuth, KindDecode}

	for _, kind := range retryable {
		if !kind.Retryable() {
			t.Errorf("expected %s to be retryable", kind)
		}
	}

	for _, kind := range terminal {
		if kind.Retryable() {
			t.Errorf("expected %s to be terminal", kind)
		}
	}
}

// TestKindFromStatus verifies the HTTP status classification table.
func TestKindFromStatus(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorKind
	}{
		{429, KindRateLimit},
		{500, KindServer},
		{502, KindServer},
		{503, KindServer},
		{400, KindAuth},
		{401, KindAuth},
		{403, KindAuth},
		{404, KindUnknown},
		{418, KindUnknown},
	}

	for _, tc := range cases {
		if got := KindFromStatus(tc.status); got != tc.want {
			t.Errorf("KindFromStatus(%d) = %s, want %s", tc.status, got, tc.want)
		}
	}
}

// TestAPIError_Error verifies the message format with and without a status code.
func TestAPIError_Error(t *testing.T) {
	withStatus := &APIError{Kind: KindServer, StatusCode: 503, Message: "unavailable"}
	if got := withStatus.Error(); got != "provider error (server, status 503): unavailable" {
		t.Errorf("unexpected message: %q", got)
	}

	withoutStatus := &APIError{Kind: KindNetwork, Message: "connection refused"}
	if got := withoutStatus.Error(); got != "provider error (network): connection refused" {
		t.Errorf("unexpected message: %q", got)
	}
}

// TestAPIError_Unwrap verifies that the underlying cause survives wrapping and
// is reachable through the errors package.
func TestAPIError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	apiErr := &APIError{Kind: KindNetwork, Message: "error sending request", Err: cause}

	if !errors.Is(apiErr, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	wrapped := fmt.Errorf("outer context: %w", apiErr)
	var found *APIError
	if !errors.As(wrapped, &found) || found.Kind != KindNetwork {
		t.Errorf("expected APIError through wrapping, got %v", wrapped)
	}
}

// TestKindOf verifies kind extraction through wrapped chains, and the
// KindUnknown fallback for foreign errors.
func TestKindOf(t *testing.T) {
	apiErr := &APIError{Kind: KindRateLimit, StatusCode: 429, Message: "slow down"}
	wrapped := fmt.Errorf("attempt 2: %w", apiErr)

	if got := KindOf(wrapped); got != KindRateLimit {
		t.Errorf("expected rate_limit, got %s", got)
	}

	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("expected unknown for foreign error, got %s", got)
	}
}

// TestRetryable verifies the package-level predicate, including nil handling.
func TestRetryable(t *testing.T) {
	if Retryable(nil) {
		t.Error("nil error must not be retryable")
	}

	if !Retryable(&APIError{Kind: KindTimeout}) {
		t.Error("timeout must be retryable")
	}

	if Retryable(&APIError{Kind: KindAuth, StatusCode: 401}) {
		t.Error("auth failure must not be retryable")
	}

	if Retryable(errors.New("who knows")) {
		t.Error("unclassified error must not be retryable")
	}
}

// TestErrorKind_StringInFormatting guards against the enum being formatted as
// a bare int inside APIError messages.
func TestErrorKind_StringInFormatting(t *testing.T) {
	err := &APIError{Kind: KindDecode, StatusCode: 200, Message: "bad body"}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("expected kind name in message, got %q", err.Error())
	}
}
