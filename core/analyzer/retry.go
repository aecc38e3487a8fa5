package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/leofalp/sintaxis/providers/ai"
)

// ErrRetryExhausted is returned when all attempts have been consumed without
// a successful response from the provider. The error is wrapped with the last
// underlying provider error so callers can use [errors.Is] / [errors.As] to
// inspect the root cause.
var ErrRetryExhausted = errors.New("sintaxis: all retry attempts exhausted")

// RetryConfig holds the tuning parameters for the retry middleware. Zero
// values are replaced with the defaults documented below when
// newRetryMiddleware is called.
type RetryConfig struct {
	// MaxAttempts is the total number of provider calls, the first attempt
	// included. Default: 3.
	MaxAttempts int

	// InitialBackoff is the wait duration before the second attempt.
	// Default: 1s.
	InitialBackoff time.Duration

	// MaxBackoff caps the computed backoff so it never exceeds this value.
	// Default: 30s.
	MaxBackoff time.Duration

	// BackoffFactor is the exponential growth multiplier applied to
	// InitialBackoff on successive retries
	// (backoff = min(InitialBackoff * BackoffFactor^retryIndex, MaxBackoff)).
	// With the defaults, attempts are separated by 1s then 2s. No jitter is
	// added: a single logical operation is in flight per call, so there is no
	// herd to spread out.
	// Default: 2.0.
	BackoffFactor float64

	// RetryableFunc returns true when an error should trigger a retry.
	// The default implementation is [ai.Retryable], which matches on the
	// structured error kind set by the HTTP layer (network faults, timeouts,
	// 5xx, rate limits).
	RetryableFunc func(error) bool
}

// applyRetryDefaults fills in zero-valued fields in config with sensible defaults.
func applyRetryDefaults(config *RetryConfig) {
	if config.MaxAttempts == 0 {
		config.MaxAttempts = 3
	}

	if config.InitialBackoff == 0 {
		config.InitialBackoff = time.Second
	}

	if config.MaxBackoff == 0 {
		config.MaxBackoff = 30 * time.Second
	}

	if config.BackoffFactor == 0 {
		config.BackoffFactor = 2.0
	}

	if config.RetryableFunc == nil {
		config.RetryableFunc = ai.Retryable
	}
}

// computeBackoff returns the backoff duration preceding the given retry
// (0-indexed): backoff = min(InitialBackoff * BackoffFactor^retryIndex, MaxBackoff).
func computeBackoff(config RetryConfig, retryIndex int) time.Duration {
	backoff := float64(config.InitialBackoff) * math.Pow(config.BackoffFactor, float64(retryIndex))
	if backoff > float64(config.MaxBackoff) {
		backoff = float64(config.MaxBackoff)
	}

	return time.Duration(backoff)
}

// newRetryMiddleware constructs a Middleware that retries failed provider
// calls according to config. Zero-valued fields in config are replaced with
// safe defaults (see RetryConfig documentation).
//
// Every attempt, classification decision, and backoff delay is logged through
// logger; the log entries are observability-only and never affect control flow.
//
// On exhaustion the returned error wraps both [ErrRetryExhausted] and the
// last provider error, allowing callers to unwrap either.
func newRetryMiddleware(config RetryConfig, logger *slog.Logger) Middleware {
	applyRetryDefaults(&config)

	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			var lastErr error

			for attempt := 0; attempt < config.MaxAttempts; attempt++ {
				if attempt > 0 {
					// Respect context cancellation between retries.
					backoff := computeBackoff(config, attempt-1)
					logger.InfoContext(ctx, "waiting before retry",
						slog.Int("attempt", attempt+1),
						slog.Duration("backoff", backoff),
					)
					select {
					case <-ctx.Done():
						return nil, ctx.Err()
					case <-time.After(backoff):
					}
				}

				response, err := next(ctx, request)
				if err == nil {
					return response, nil
				}

				lastErr = err

				if !config.RetryableFunc(err) {
					logger.WarnContext(ctx, "provider call failed, not retryable",
						slog.Int("attempt", attempt+1),
						slog.String("error_kind", ai.KindOf(err).String()),
						slog.String("error", err.Error()),
					)
					return nil, err
				}

				logger.WarnContext(ctx, "provider call failed, retryable",
					slog.Int("attempt", attempt+1),
					slog.Int("max_attempts", config.MaxAttempts),
					slog.String("error_kind", ai.KindOf(err).String()),
					slog.String("error", err.Error()),
				)
			}

			return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, config.MaxAttempts, lastErr)
		}
	}
}
