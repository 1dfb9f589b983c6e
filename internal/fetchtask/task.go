// Package fetchtask implements the per-URL fetch-and-parse contract (C3):
// one task encapsulates one URL at one depth, is populated exactly once
// from an HTTP response, and always yields a result even on failure.
package fetchtask

import (
	"io"
	"net/url"
	"strings"

	"github.com/haldorsen/webcrawl/internal/crawlreport"
	"github.com/haldorsen/webcrawl/internal/httpfetch"
	"github.com/haldorsen/webcrawl/internal/linkextract"
)

// Result is populated exactly once, during response processing.
type Result struct {
	Status      int
	ContentType string
	LinkCount   int
}

// Task encapsulates one URL+depth. It is mutable only by whichever worker
// currently owns it.
type Task struct {
	URL    *url.URL
	Depth  uint16
	Result Result
}

// New creates a task for url at depth.
func New(u *url.URL, depth uint16) *Task {
	return &Task{URL: u, Depth: depth}
}

// Parse interprets resp, records status/content-type/link-count on the
// task, and returns the outbound links when the body is HTML.
//
// Per §4.3:
//   - status is always recorded.
//   - content-type is recorded if present, else left empty.
//   - if content-type doesn't start with "text/html", no links are
//     extracted and ok is false.
//   - if the body can't be read, no links are extracted and ok is false.
func (t *Task) Parse(resp *httpfetch.Response) (links []*url.URL, ok bool) {
	t.Result.Status = resp.Status
	t.Result.ContentType = resp.ContentType

	if resp.Body != nil {
		defer resp.Body.Close()
	}

	if !strings.HasPrefix(resp.ContentType, "text/html") {
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false
	}

	links, err = linkextract.ExtractLinks(t.URL, strings.NewReader(string(body)))
	if err != nil {
		return nil, false
	}

	t.Result.LinkCount = len(links)
	return links, true
}

// ReportBlock renders this task's stdout block per §6.
func (t *Task) ReportBlock() crawlreport.Task {
	return crawlreport.Task{
		URL:         t.URL.String(),
		Depth:       t.Depth,
		Links:       t.Result.LinkCount,
		Status:      t.Result.Status,
		ContentType: t.Result.ContentType,
	}
}
