package analyzer

import "errors"

// Terminal errors surfaced by [Analyzer.Analyze]. Transient failures are
// absorbed by the retry layer and never reach the caller while the attempt
// budget allows; empty responses and malformed payloads are reported as an
// absent result instead of an error.
var (
	// ErrNotConfigured is returned when no usable provider handle is present.
	// It is raised synchronously, before any network attempt.
	ErrNotConfigured = errors.New("sintaxis: analyzer is not configured with a usable provider")

	// ErrInvalidCredential is returned when the provider rejects the API
	// credential. It is terminal: no retries are performed.
	ErrInvalidCredential = errors.New("sintaxis: invalid or expired API credential")

	// ErrNetworkUnreachable is returned when the provider could not be
	// reached after the retry budget was spent on connectivity failures.
	ErrNetworkUnreachable = errors.New("sintaxis: text generation service unreachable")
)
