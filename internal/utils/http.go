package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/leofalp/sintaxis/providers/ai"
)

// HeaderOption is an extra header set on the outbound request, used by
// providers whose authentication scheme is not a Bearer token (e.g. Gemini's
// x-goog-api-key header).
type HeaderOption struct {
	Key   string
	Value string
}

// DoPostSync performs a synchronous HTTP POST request with JSON body and parses
// the response into OutputStruct.
//
// Error handling strategy:
//   - Context cancellation is propagated as-is so callers see ctx.Err().
//   - Every other failure is returned as *ai.APIError with the Kind field set
//     by this layer: transport faults map to KindNetwork, deadline expiry to
//     KindTimeout, non-2xx statuses through ai.KindFromStatus, and broken
//     response bodies to KindDecode. Downstream retry and surfacing decisions
//     match on that kind instead of the message text.
//   - Response body close errors are logged but don't override primary errors.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, nil, err
		}
		return nil, nil, &ai.APIError{
			Kind:    classifyTransportError(err),
			Message: "error sending request",
			Err:     err,
		}
	}
	defer func(closer io.ReadCloser) {
		if closeErr := closer.Close(); closeErr != nil {
			// Log the close error, but don't override the main error.
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, &ai.APIError{
			Kind:       ai.KindNetwork,
			StatusCode: res.StatusCode,
			Message:    "error reading response body",
			Err:        err,
		}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, &ai.APIError{
			Kind:       ai.KindFromStatus(res.StatusCode),
			StatusCode: res.StatusCode,
			Message:    TruncateStringDefault(string(respBody)),
		}
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, &ai.APIError{
			Kind:       ai.KindDecode,
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("error unmarshaling response body: %s", TruncateStringDefault(string(respBody))),
			Err:        err,
		}
	}

	return res, &resStruct, nil
}

// classifyTransportError distinguishes deadline expiry from other transport
// faults so retry policies can treat them as separate kinds.
func classifyTransportError(err error) ai.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return ai.KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ai.KindTimeout
	}

	return ai.KindNetwork
}

// CloseWithLog closes c and logs a warning on failure. Used in defer
// statements where the close error cannot change the function result.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close resource", "error", err.Error())
	}
}
