package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leofalp/sintaxis/providers/ai"
)

// TestSendMessage verifies the full round trip against a stub server: URL
// construction, the x-goog-api-key header, and response conversion.
func TestSendMessage(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(generateContentResponse{
			Candidates: []candidate{
				{
					Content:      &content{Role: "model", Parts: []part{{Text: `{"ok": true}`}}},
					FinishReason: "STOP",
				},
			},
			UsageMetadata: &usageMetadata{PromptTokenCount: 3, CandidatesTokenCount: 2, TotalTokenCount: 5},
		})
	}))
	defer server.Close()

	provider := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	resp, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model:    "gemini-2.0-flash-lite",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "analyze this"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(gotPath, "/models/gemini-2.0-flash-lite:generateContent") {
		t.Errorf("unexpected request path: %q", gotPath)
	}

	if gotKey != "test-key" {
		t.Errorf("expected API key header, got %q", gotKey)
	}

	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "analyze this" {
		t.Errorf("unexpected outbound body: %+v", gotBody)
	}

	if resp.Content != `{"ok": true}` {
		t.Errorf("unexpected content: %q", resp.Content)
	}

	if resp.FinishReason != "stop" {
		t.Errorf("unexpected finish reason: %q", resp.FinishReason)
	}

	if resp.Model != "gemini-2.0-flash-lite" {
		t.Errorf("expected model backfilled on response, got %q", resp.Model)
	}
}

// TestSendMessage_DefaultModel verifies that an empty request model falls back
// to the provider default in the request URL.
func TestSendMessage_DefaultModel(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(generateContentResponse{
			Candidates: []candidate{{Content: &content{Parts: []part{{Text: "ok"}}}, FinishReason: "STOP"}},
		})
	}))
	defer server.Close()

	provider := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "x"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gotPath, defaultModel) {
		t.Errorf("expected default model in path, got %q", gotPath)
	}
}

// TestSendMessage_MissingKey verifies that a provider without a key fails fast
// with an auth-kind error and never reaches the network.
func TestSendMessage_MissingKey(t *testing.T) {
	provider := &GeminiProvider{baseURL: "http://127.0.0.1:0", client: &http.Client{}}

	if provider.IsConfigured() {
		t.Error("expected IsConfigured to report false without a key")
	}

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{})

	var apiErr *ai.APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != ai.KindAuth {
		t.Fatalf("expected auth error, got %v", err)
	}
}

// TestSendMessage_ServerError verifies that a 5xx from the API surfaces as a
// retryable server-kind error.
func TestSendMessage_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "x"}},
	})

	var apiErr *ai.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}

	if apiErr.Kind != ai.KindServer || !ai.Retryable(err) {
		t.Errorf("expected retryable server error, got kind %s", apiErr.Kind)
	}
}
