package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leofalp/sintaxis/internal/utils"
	"github.com/leofalp/sintaxis/providers/ai"
)

// Analyzer drives sentence analysis calls against a configured provider.
// Each call owns its own attempt counter and last-error value, so concurrent
// calls on the same Analyzer are independent.
type Analyzer struct {
	provider ai.Provider
	logger   *slog.Logger
	model    string
	retry    RetryConfig
	extra    []Middleware
	chain    SendFunc
}

// Option configures an Analyzer at construction time.
type Option func(*Analyzer)

// WithLogger sets the logger used for diagnostic output. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithModel overrides the provider's default model for analysis requests.
func WithModel(model string) Option {
	return func(a *Analyzer) {
		a.model = model
	}
}

// WithRetryConfig overrides the retry policy. Zero-valued fields keep their
// defaults (3 total attempts, 1s initial backoff, factor 2).
func WithRetryConfig(config RetryConfig) Option {
	return func(a *Analyzer) {
		a.retry = config
	}
}

// WithMiddleware appends extra middlewares between the built-in logging and
// retry layers. Entries execute outermost-first in the order given.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(a *Analyzer) {
		a.extra = append(a.extra, middlewares...)
	}
}

// New creates an Analyzer for the given provider. A nil or unconfigured
// provider is accepted: the resulting Analyzer reports false from
// [Analyzer.IsConfigured] and fails every Analyze call with
// [ErrNotConfigured] without touching the network. This mirrors process-wide
// initialization where a failed setup disables the operation rather than
// crashing it. A provider that becomes configured later (its With* methods
// mutate the receiver) is picked up on the next Analyze call.
func New(provider ai.Provider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider: provider,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	// The chain is built regardless of configuration state: providers are
	// mutable handles (WithAPIKey and friends update the receiver), so a
	// provider that is unconfigured here may become usable later. Analyze
	// gates on IsConfigured before every call.
	middlewares := []Middleware{newLoggingMiddleware(a.logger)}
	middlewares = append(middlewares, a.extra...)
	middlewares = append(middlewares, newRetryMiddleware(a.retry, a.logger))
	a.chain = buildSendChain(a.provider, middlewares)

	return a
}

// IsConfigured reports whether the analyzer holds a usable provider handle.
// It is pure and safe to poll.
func (a *Analyzer) IsConfigured() bool {
	return a.provider != nil && a.provider.IsConfigured()
}

// Analyze performs one sentence analysis. It returns the validated tree on
// success, (nil, nil) when the service answered with an empty body or with a
// payload that fails validation, and an error for terminal failures:
// [ErrNotConfigured], [ErrInvalidCredential], [ErrNetworkUnreachable], or a
// generic failure wrapping the last underlying cause (which carries
// [ErrRetryExhausted] when the retry budget was spent).
func (a *Analyzer) Analyze(ctx context.Context, sentence string) (*SentenceAnalysis, error) {
	if !a.IsConfigured() {
		return nil, ErrNotConfigured
	}

	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return nil, errors.New("sintaxis: sentence must not be empty")
	}

	request := buildRequest(sentence)
	request.Model = a.model

	response, err := a.chain(ctx, request)
	if err != nil {
		return nil, a.classifyFailure(err)
	}

	if strings.TrimSpace(response.Content) == "" {
		// The call itself succeeded; an empty body is a soft failure and is
		// never retried.
		a.logger.WarnContext(ctx, "provider returned an empty response body",
			slog.String("finish_reason", response.FinishReason),
		)
		return nil, nil
	}

	analysis, err := DecodeAnalysis(response.Content)
	if err != nil {
		// The payload was delivered but its shape is unusable. Not retryable:
		// reported as an absent result so callers can render "analysis
		// unavailable" without treating it as exceptional.
		a.logger.WarnContext(ctx, "response failed validation",
			slog.String("reason", err.Error()),
			slog.String("content", utils.TruncateString(response.Content, truncateLen)),
		)
		return nil, nil
	}

	return analysis, nil
}

// classifyFailure maps a terminal chain error onto the package's error
// taxonomy by matching the structured kind carried in the chain, digging
// through retry wrapping. An error that carries no provider kind and is a
// plain context error (cancellation or deadline expiry between attempts) is
// the caller's own doing and passes through untouched.
func (a *Analyzer) classifyFailure(err error) error {
	switch ai.KindOf(err) {
	case ai.KindAuth:
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	case ai.KindNetwork, ai.KindTimeout:
		return fmt.Errorf("%w: %w", ErrNetworkUnreachable, err)
	default:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("sintaxis: sentence analysis failed: %w", err)
	}
}
