// Package http provides the HTTP edge of pagesift: a browser-like
// implementation of pagesift.Fetcher and the JSON API server.
package http

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pagesift/pagesift"
)

// DefaultFetchTimeout is the default timeout for outbound HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// browserHeaders mimics a common desktop browser to reduce trivial
// bot-blocking by target sites.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Accept-Encoding": "gzip",
	"Connection":      "keep-alive",
	"Cache-Control":   "no-cache",
}

// Ensure Fetcher implements pagesift.Fetcher at compile time.
var _ pagesift.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests with
// browser-like headers. It does not execute JavaScript.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new browser-like Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Redirects are
// followed; any final status of 400 or above is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagesift.Errorf(pagesift.EINVALID, "invalid URL: %v", err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "HTTP error! status: %d", resp.StatusCode)
	}

	// Setting Accept-Encoding explicitly disables the transport's
	// transparent decompression, so gzip bodies arrive compressed.
	body := io.Reader(resp.Body)
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "failed to decompress response: %v", err)
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "failed to read response: %v", err)
	}

	return string(data), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
