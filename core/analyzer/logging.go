package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/leofalp/sintaxis/internal/utils"
	"github.com/leofalp/sintaxis/providers/ai"
)

// truncateLen is the maximum content length included in debug log output.
const truncateLen = 500

// newLoggingMiddleware constructs the outermost middleware: it emits
// structured slog entries before and after the whole retried provider
// exchange. Per-attempt detail is logged by the retry middleware underneath.
func newLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			logger.InfoContext(ctx, "analysis request",
				slog.String("model", request.Model),
				slog.Int("message_count", len(request.Messages)),
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "analysis request failed",
					slog.String("model", request.Model),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			attrs := []any{
				slog.String("model", response.Model),
				slog.Duration("duration", elapsed),
			}

			if response.FinishReason != "" {
				attrs = append(attrs, slog.String("finish_reason", response.FinishReason))
			}

			if response.Usage != nil {
				attrs = append(attrs,
					slog.Int("prompt_tokens", response.Usage.PromptTokens),
					slog.Int("completion_tokens", response.Usage.CompletionTokens),
					slog.Int("total_tokens", response.Usage.TotalTokens),
				)
			}

			logger.InfoContext(ctx, "analysis request completed", attrs...)

			logger.DebugContext(ctx, "analysis response content",
				slog.String("content", utils.TruncateString(response.Content, truncateLen)),
			)

			return response, nil
		}
	}
}
