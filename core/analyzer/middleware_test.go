package analyzer

import (
	"context"
	"testing"

	"github.com/leofalp/sintaxis/providers/ai"
)

// TestBuildSendChain_Order verifies that middlewares execute outermost-first:
// the first entry in the slice runs first on the way in and last on the way out.
func TestBuildSendChain_Order(t *testing.T) {
	var trace []string

	record := func(name string) Middleware {
		return func(next SendFunc) SendFunc {
			return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
				trace = append(trace, name+":in")
				resp, err := next(ctx, request)
				trace = append(trace, name+":out")
				return resp, err
			}
		}
	}

	provider := &stubProvider{configured: true}
	chain := buildSendChain(provider, []Middleware{record("outer"), record("inner")})

	if _, err := chain(context.Background(), ai.ChatRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"outer:in", "inner:in", "inner:out", "outer:out"}
	if len(trace) != len(want) {
		t.Fatalf("expected trace %v, got %v", want, trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("expected trace %v, got %v", want, trace)
		}
	}
}

// TestBuildSendChain_NoMiddleware verifies that an empty middleware slice
// yields a direct provider call.
func TestBuildSendChain_NoMiddleware(t *testing.T) {
	provider := &stubProvider{configured: true}
	chain := buildSendChain(provider, nil)

	resp, err := chain(context.Background(), ai.ChatRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp == nil || resp.Content == "" {
		t.Error("expected provider response to pass through unchanged")
	}

	if provider.callCount != 1 {
		t.Errorf("expected 1 provider call, got %d", provider.callCount)
	}
}
