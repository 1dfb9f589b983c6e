// Package linkextract parses an HTML document and resolves its anchor hrefs
// into absolute URLs against a base.
package linkextract

import (
	"io"
	"net/url"

	"golang.org/x/net/html"
)

// ExtractLinks walks the HTML document read from r and returns one absolute
// URL per <a> element bearing an href, in document order.
//
// Resolution per href:
//  1. If it parses as an absolute URL, it is kept verbatim.
//  2. Else, if it parses as a relative reference, it is resolved against
//     base. Resolution failures are treated as rule 3.
//  3. Otherwise it is discarded silently.
//
// No filtering by scheme, host, or fragment happens here; that is a
// coordinator policy.
func ExtractLinks(base *url.URL, r io.Reader) ([]*url.URL, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []*url.URL
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href, ok := hrefOf(n); ok {
				if u, ok := resolve(base, href); ok {
					links = append(links, u)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

func hrefOf(n *html.Node) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			return attr.Val, true
		}
	}
	return "", false
}

// resolve implements the three-rule policy from §4.2: keep absolute
// references verbatim, resolve relative ones against base, discard anything
// else.
func resolve(base *url.URL, href string) (*url.URL, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	if ref.IsAbs() {
		return ref, true
	}
	if base == nil {
		return nil, false
	}
	return base.ResolveReference(ref), true
}
