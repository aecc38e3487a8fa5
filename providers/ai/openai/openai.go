package openai

import (
	"context"
	"net/http"
	"os"

	"github.com/leofalp/sintaxis/internal/utils"
	"github.com/leofalp/sintaxis/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	defaultModel            = "gpt-4o-mini"
	chatCompletionsEndpoint = "/chat/completions"
)

// OpenAIProvider implements the ai.Provider interface for the OpenAI API.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new OpenAI provider instance with default values from environment.
// Environment variables:
//   - OPENAI_API_KEY: API key for authentication
//   - OPENAI_API_BASE_URL: Base URL for API (optional, defaults to OpenAI's API)
func New() *OpenAIProvider {
	apiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// IsConfigured reports whether an API key is present.
func (p *OpenAIProvider) IsConfigured() bool {
	return p.apiKey != ""
}

// SendMessage implements the ai.Provider interface.
func (p *OpenAIProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, &ai.APIError{Kind: ai.KindAuth, Message: "OPENAI_API_KEY is not set"}
	}

	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](
		ctx,
		p.client,
		p.baseURL+chatCompletionsEndpoint,
		p.apiKey,
		requestFromGeneric(request),
	)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, &ai.APIError{
			Kind:       ai.KindDecode,
			StatusCode: httpResponse.StatusCode,
			Message:    "empty response from OpenAI API",
		}
	}

	return responseToGeneric(*resp), nil
}
