package crawler

import (
	"context"
	"io"
	"net/url"

	"github.com/haldorsen/webcrawl/internal/crawlreport"
	"github.com/haldorsen/webcrawl/internal/fetchtask"
	"github.com/haldorsen/webcrawl/internal/httpfetch"
)

// outcome is the single result every dispatched task must publish, success
// or failure, so that N can always reach zero (§4.4.4, §4.4.8).
type outcome struct {
	task  *fetchtask.Task
	links []*url.URL
	err   error
}

// fetchAndParse performs exactly one GET and interprets the response via
// C3. On transport failure it returns a zero-links outcome with err set —
// the worker contract requires a result is always published, never a
// retry and never a dropped task.
func fetchAndParse(ctx context.Context, fetcher httpfetch.Fetcher, task *fetchtask.Task) outcome {
	resp, err := fetcher.Fetch(ctx, task.URL.String())
	if err != nil {
		return outcome{task: task, err: err}
	}

	links, _ := task.Parse(resp)
	return outcome{task: task, links: links}
}

// writeBlock renders task's stdout block, per §6's output contract.
func writeBlock(w io.Writer, task *fetchtask.Task) {
	crawlreport.WriteBlock(w, task.ReportBlock())
}
