// Package ai defines the shared, provider-agnostic types and interfaces used
// across all text-generation provider implementations (Gemini, OpenAI, etc.).
// Each provider's conversion layer is responsible for mapping these types to
// its own wire format, keeping the rest of the codebase decoupled from
// provider-specific details.
//
// The central interface is [Provider] for synchronous chat completions.
// Request data flows through [ChatRequest] and responses are returned as
// [ChatResponse]. Transport and API failures are surfaced as [APIError]
// values carrying an [ErrorKind], so callers classify failures by matching
// on an enumerated category instead of inspecting message text.
package ai
