package webanalysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher defines how the engine retrieves the raw page markup.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (body io.ReadCloser, statusCode int, err error)
}

// StyleFetcher defines how the inliner retrieves one external stylesheet.
// Each fetch carries its own timeout, independent of the outer page fetch.
type StyleFetcher interface {
	FetchStylesheet(ctx context.Context, url string) (string, error)
}

const (
	maxRedirects   = 5
	pageUserAgent  = "UIUXAnalyzerBot/1.0"
	styleUserAgent = "UIUXAnalyzerBot/1.0 (stylesheet inliner)"

	// DefaultStylesheetTimeout bounds each individual stylesheet fetch.
	DefaultStylesheetTimeout = 3 * time.Second

	maxPageBody       = 10 << 20 // 10 MB
	maxStylesheetBody = 2 << 20  // 2 MB
)

var (
	errTooManyRedirects = errors.New("too many redirects")
	errBlockedRedirect  = errors.New("redirect to non-http(s) scheme blocked")
)

// limitedReadCloser reads from a LimitReader but closes the original body.
type limitedReadCloser struct {
	io.Reader
	io.Closer
}

// HTTPClient implements Fetcher using a real HTTP client with a 10s
// timeout, a transport that blocks connections to private/reserved IP
// ranges, and redirect validation that prevents SSRF via redirect chains.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient returns the hardened page fetcher.
func NewHTTPClient() *HTTPClient {
	return newHTTPClient(safeTransport(10))
}

func newHTTPClient(transport http.RoundTripper) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout:       10 * time.Second,
			Transport:     transport,
			CheckRedirect: safeRedirectPolicy,
		},
	}
}

// safeRedirectPolicy validates redirect targets and limits the redirect chain length.
func safeRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d", errTooManyRedirects, maxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("%w: %s", errBlockedRedirect, req.URL.Scheme)
	}
	return nil
}

// Fetch retrieves the page at the given URL and returns its body, capped
// at 10 MB to prevent memory exhaustion from extremely large responses.
func (c *HTTPClient) Fetch(ctx context.Context, targetURL string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", pageUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req) //nolint:bodyclose // body is returned to caller via limitedReadCloser
	if err != nil {
		return nil, 0, err
	}

	limited := &limitedReadCloser{
		Reader: io.LimitReader(resp.Body, maxPageBody),
		Closer: resp.Body,
	}
	return limited, resp.StatusCode, nil
}

// StyleClient implements StyleFetcher with a short per-request timeout so
// one slow stylesheet server cannot stall the whole inlining pass.
type StyleClient struct {
	client  *http.Client
	timeout time.Duration
}

// NewStyleClient returns the hardened stylesheet fetcher. A non-positive
// timeout falls back to DefaultStylesheetTimeout.
func NewStyleClient(timeout time.Duration) *StyleClient {
	return newStyleClient(timeout, safeTransport(4))
}

func newStyleClient(timeout time.Duration, transport http.RoundTripper) *StyleClient {
	if timeout <= 0 {
		timeout = DefaultStylesheetTimeout
	}
	return &StyleClient{
		timeout: timeout,
		client: &http.Client{
			Transport:     transport,
			CheckRedirect: safeRedirectPolicy,
		},
	}
}

// FetchStylesheet retrieves one stylesheet under the client's timeout. Any
// non-2xx status is an error; the caller treats all errors as "skip this
// resource".
func (c *StyleClient) FetchStylesheet(ctx context.Context, targetURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", styleUserAgent)
	req.Header.Set("Accept", "text/css")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxStylesheetBody))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
