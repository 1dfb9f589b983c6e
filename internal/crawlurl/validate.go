// Package crawlurl validates seed URLs accepted by the crawler.
package crawlurl

import (
	"fmt"
	"net/url"
)

// ValidateSeed parses raw and requires an http or https scheme.
// It is called exactly once, on the seed URL, before any coordinator starts.
func ValidateSeed(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing seed URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("seed URL %q must use http or https scheme, got %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("seed URL %q is missing a host", raw)
	}
	return u, nil
}
