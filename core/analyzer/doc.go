// Package analyzer drives a single "analyze this sentence" operation against
// a text-generation provider: it builds a deterministic analysis prompt,
// executes it through a middleware chain with bounded retries and exponential
// backoff, and validates the JSON payload the model returns before handing a
// [SentenceAnalysis] tree to the caller.
//
// The primary entry point is [New], which accepts an [ai.Provider] and a set
// of functional options (e.g. [WithLogger], [WithRetryConfig]). A nil or
// unconfigured provider yields an analyzer whose [Analyzer.Analyze] fails
// fast with [ErrNotConfigured]; no network attempt is made.
//
// A successful call returns the validated tree. Two conditions are reported
// as an absent result (nil, nil) rather than an error: an empty response
// body, and a response whose JSON shape does not match the expected schema.
// This lets callers distinguish "service unreachable" (error) from "service
// answered unusably" (no result).
package analyzer
