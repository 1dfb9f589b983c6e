// Package httpfetch implements the opaque HTTP fetcher collaborator: it
// performs GET requests with a configured user agent, gzip decoding, and a
// connect timeout, and exposes a minimal response shape the crawler cares
// about (status, content-type, body).
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultConnectTimeout mirrors the 10s connect timeout used by the
	// original synchronous and async Rust clients.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultUserAgent is sent on every request unless overridden.
	DefaultUserAgent = "webcrawl/1.0"
)

// Response is the minimal shape the crawler needs from a fetch: a numeric
// status, a content-type lookup, and a text body. Callers must Close Body.
type Response struct {
	Status      int
	ContentType string
	Body        io.ReadCloser
}

// Fetcher performs one GET per call. Implementations must never block
// indefinitely; a connect timeout is expected to be baked in.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Response, error)
}

// Client is a Fetcher backed by *http.Client. It is safe for concurrent use
// by multiple goroutines — workers in the threaded and async coordinator
// variants share one instance read-only.
type Client struct {
	http      *http.Client
	userAgent string
}

// Config configures a Client.
type Config struct {
	// ConnectTimeout bounds dialing a new connection (default 10s).
	ConnectTimeout time.Duration
	// UserAgent is sent on every request (default "webcrawl/1.0").
	UserAgent string
}

// New builds a Client. Response bodies are decoded transparently when the
// server gzips them, since the stdlib transport negotiates gzip whenever the
// caller does not set its own Accept-Encoding header.
func New(cfg Config) *Client {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
	}

	return &Client{
		http:      &http.Client{Transport: transport},
		userAgent: cfg.UserAgent,
	}
}

// Fetch performs a single GET. The returned Response's Body must be read (or
// discarded) and is only valid until the enclosing request's context is
// cancelled.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}, nil
}
