package analyzer

import (
	"context"

	"github.com/leofalp/sintaxis/providers/ai"
)

// SendFunc is a function that sends a chat request to the provider and returns
// the completed response. It is the base unit threaded through the middleware chain.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware intercepts and optionally transforms provider calls. Each
// Middleware receives the next SendFunc in the chain and returns a new
// SendFunc that wraps it. Middlewares are applied outermost-first: the first
// middleware in the slice is the outermost wrapper.
type Middleware func(next SendFunc) SendFunc

// buildSendChain constructs the linear middleware chain. The base function
// calls the provider directly. Middlewares are applied in reverse order so
// that the first entry in the slice becomes the outermost wrapper, i.e. the
// first to execute on an incoming request.
func buildSendChain(provider ai.Provider, middlewares []Middleware) SendFunc {
	// Base function: direct provider call.
	var chain SendFunc = func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		return provider.SendMessage(ctx, request)
	}

	// Apply middlewares in reverse so that middlewares[0] is outermost.
	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}

	return chain
}
