package gemini

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/leofalp/sintaxis/internal/utils"
	"github.com/leofalp/sintaxis/providers/ai"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash-lite" // Most cost-effective model
)

// GeminiProvider implements the ai.Provider interface for Google's Gemini API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Gemini provider instance with default values from environment.
// Environment variables:
//   - GEMINI_API_KEY: API key for authentication
//   - GEMINI_API_BASE_URL: Base URL for API (optional, defaults to Google's API)
func New() *GeminiProvider {
	apiKey := os.Getenv("GEMINI_API_KEY")
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *GeminiProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *GeminiProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// IsConfigured reports whether an API key is present.
func (p *GeminiProvider) IsConfigured() bool {
	return p.apiKey != ""
}

// SendMessage implements the ai.Provider interface.
// It sends a chat request to the Gemini API and returns the response.
func (p *GeminiProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, &ai.APIError{Kind: ai.KindAuth, Message: "GEMINI_API_KEY is not set"}
	}

	// Determine model
	model := request.Model
	if model == "" {
		model = defaultModel
	}

	// Build request URL
	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, model)

	// Convert request to Gemini format
	geminiReq := requestToGemini(request)

	// Send request with Gemini-specific authentication header
	httpResponse, resp, err := utils.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		"", // Empty apiKey for DoPostSync's default Bearer auth
		geminiReq,
		utils.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
	)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, &ai.APIError{
			Kind:       ai.KindDecode,
			StatusCode: httpResponse.StatusCode,
			Message:    "empty response from Gemini API",
		}
	}

	// Convert response to generic format
	result := geminiToGeneric(*resp)
	result.Model = model // Ensure model is set even if not in response

	return result, nil
}
