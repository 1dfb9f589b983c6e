package crawler

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/haldorsen/webcrawl/internal/fetchtask"
)

// RunSequential is Variant S: a single flow of control, a FIFO frontier
// slice, no suspension, no sharing, no locks. Grounded in
// original_source/web-crawler/src/synchronous/crawler.rs's Tasks cursor.
func RunSequential(ctx context.Context, cfg Config) error {
	seed, err := url.Parse(cfg.Seed)
	if err != nil {
		return fmt.Errorf("invalid seed URL: %w", err)
	}

	start := time.Now()
	logger := cfg.logger().WithRun(uuid.NewString())
	out := cfg.output()

	f := newFrontier()
	var queue []*fetchtask.Task

	seedKey := seed.String()
	f.admit(seedKey)
	queue = append(queue, fetchtask.New(seed, 0))

	errorCount := 0
	cursor := 0
	for cursor < len(queue) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		task := queue[cursor]
		cursor++

		result := fetchAndParse(ctx, cfg.Fetcher, task)
		f.accountFor()

		if result.err != nil {
			logger.FetchFailed(task.URL.String(), task.Depth, result.err)
			errorCount++
			writeBlock(out, task)
			continue
		}

		writeBlock(out, task)
		logger.Fetched(task.URL.String(), task.Depth, task.Result.Status, task.Result.ContentType, task.Result.LinkCount)

		if task.Depth >= cfg.MaxDepth {
			continue
		}

		for _, link := range result.links {
			key := link.String()
			if !f.admit(key) {
				continue
			}
			queue = append(queue, fetchtask.New(link, task.Depth+1))
		}
	}

	logger.Summary("sequential", f.size(), errorCount, time.Since(start))
	return nil
}
