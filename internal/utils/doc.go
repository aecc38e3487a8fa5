// Package utils provides shared low-level helpers used throughout the
// sintaxis internals: a generic HTTP helper for synchronous JSON round-trips
// with AI provider APIs, and small string utilities for log-safe output.
//
// Key entry points: [DoPostSync] for POST-and-decode against a provider
// endpoint, [TruncateString] for bounding untrusted text in log attributes,
// and [JSONToString] for compact JSON rendering.
package utils
