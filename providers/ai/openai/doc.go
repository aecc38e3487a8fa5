// Package openai implements the [ai.Provider] interface on top of the
// OpenAI chat completions API and API-compatible servers.
package openai
