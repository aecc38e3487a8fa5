package analyzer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/leofalp/sintaxis/providers/ai"
)

// captureLogger returns a text slog.Logger writing into buf at debug level.
func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// TestLoggingMiddleware_Success verifies that a successful exchange emits a
// request entry and a completion entry carrying duration and usage.
func TestLoggingMiddleware_Success(t *testing.T) {
	var buf bytes.Buffer

	send := func(_ context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
		return &ai.ChatResponse{
			Model:        "test-model",
			Content:      "{}",
			FinishReason: "stop",
			Usage:        &ai.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		}, nil
	}

	chain := newLoggingMiddleware(captureLogger(&buf))(send)
	if _, err := chain(context.Background(), ai.ChatRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"analysis request", "analysis request completed", "total_tokens=15", "finish_reason=stop"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, out)
		}
	}
}

// TestLoggingMiddleware_Failure verifies that a failed exchange emits an error
// entry and propagates the error unchanged.
func TestLoggingMiddleware_Failure(t *testing.T) {
	var buf bytes.Buffer

	sendErr := errors.New("boom")
	send := func(_ context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
		return nil, sendErr
	}

	chain := newLoggingMiddleware(captureLogger(&buf))(send)
	_, err := chain(context.Background(), ai.ChatRequest{})
	if !errors.Is(err, sendErr) {
		t.Fatalf("expected original error to propagate, got %v", err)
	}

	if !strings.Contains(buf.String(), "analysis request failed") {
		t.Errorf("expected failure log entry, got:\n%s", buf.String())
	}
}

// TestRetryMiddleware_LogsAttemptsAndDelays verifies the observability
// contract: each failed attempt and each backoff wait produces a log entry.
func TestRetryMiddleware_LogsAttemptsAndDelays(t *testing.T) {
	var buf bytes.Buffer

	serverErr := &ai.APIError{Kind: ai.KindServer, StatusCode: 502, Message: "bad gateway"}
	seq := &mockSendSequence{
		errors:    []error{serverErr, nil},
		responses: []*ai.ChatResponse{nil, {Content: "ok", FinishReason: "stop"}},
	}

	chain := newRetryMiddleware(RetryConfig{InitialBackoff: 1}, captureLogger(&buf))(seq.next)
	if _, err := chain(context.Background(), ai.ChatRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"provider call failed, retryable", "error_kind=server", "waiting before retry"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, out)
		}
	}
}
