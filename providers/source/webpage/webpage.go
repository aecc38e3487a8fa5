package webpage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/sintaxis/internal/utils"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value
	DefaultUserAgent = "sintaxis-webpage-source/1.0"
	// MaxBodySize is the maximum response body size (10MB)
	MaxBodySize = 10 * 1024 * 1024
	// DialTimeout is the maximum time to wait for a TCP connection
	DialTimeout = 10 * time.Second
)

// Page is the result of one fetch: the final URL after redirects and the
// page content converted from HTML to Markdown.
type Page struct {
	URL      string
	Markdown string
}

// Fetch retrieves the web page at url and returns its content as Markdown.
//
// Partial URLs (e.g. "example.com") are normalised by prepending "https://".
// Up to ten HTTP redirects are followed; the final URL after all redirects is
// returned in [Page.URL]. The response body is capped at [MaxBodySize] bytes.
//
// Fetch returns an error when the URL is empty, the HTTP status code is not
// 200 OK, the body exceeds [MaxBodySize], HTML-to-Markdown conversion fails,
// or the context is cancelled or times out.
func Fetch(ctx context.Context, url string) (Page, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Page{}, fmt.Errorf("URL cannot be empty")
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctxWithTimeout, "GET", url, nil)
	if err != nil {
		return Page{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", DefaultUserAgent)

	client := &http.Client{
		Timeout: DefaultTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ForceAttemptHTTP2:     true,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects (>10)")
			}
			return nil
		},
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		if ctxWithTimeout.Err() != nil {
			return Page{}, fmt.Errorf("request timeout or canceled: %w", err)
		}
		return Page{}, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, resp.Status)
	}

	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return Page{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(htmlBytes) == MaxBodySize {
		return Page{}, fmt.Errorf("response body exceeds maximum size of %d bytes", MaxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(htmlBytes))
	if err != nil {
		return Page{}, fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	return Page{
		URL:      resp.Request.URL.String(),
		Markdown: markdown,
	}, nil
}
