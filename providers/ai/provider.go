package ai

import (
	"context"
	"net/http"
)

// Provider is the core interface that every text-generation provider
// implementation must satisfy. It covers the full lifecycle of a single
// request: authentication, endpoint configuration, message dispatch, and
// response interpretation.
type Provider interface {
	// SendMessage sends a chat request to the provider and returns the
	// completed response. Returns an error if the provider call fails,
	// the context is cancelled, or the response cannot be decoded.
	// Transport and API failures are returned as *APIError.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// IsConfigured reports whether the provider holds everything it needs
	// to attempt a request (typically an API key). It is pure and safe to
	// poll; no network traffic is generated.
	IsConfigured() bool

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}
