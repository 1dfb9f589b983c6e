package crawler

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/haldorsen/webcrawl/internal/fetchtask"
)

// RunAsync is Variant A: one short-lived goroutine per admitted task,
// gated by a semaphore.Weighted sized W — the same fetchSem pattern used
// by the analyzer in crawler-analyzer_internal.go, and the Go analogue of
// the token-bucket in original_source/web-crawler/src/asynchronous/crawler.rs's
// Token/mpsc pair. The coordinator goroutine remains the sole owner of H
// and N. The dispatch loop does not watch ctx and RunAsync never returns
// ctx.Err(): a cancelled ctx makes waiting token acquisitions and in-flight
// fetches fail, each such task is recorded as a failed fetch, and the loop
// still drains until N is zero.
func RunAsync(ctx context.Context, cfg Config) error {
	seed, err := url.Parse(cfg.Seed)
	if err != nil {
		return fmt.Errorf("invalid seed URL: %w", err)
	}

	w := cfg.clampedConcurrency()
	start := time.Now()
	logger := cfg.logger().WithRun(uuid.NewString())
	out := cfg.output()

	tokens := semaphore.NewWeighted(int64(w))
	resultsCh := make(chan outcome, w)

	f := newFrontier()
	spawn := func(task *fetchtask.Task) {
		go func() {
			if err := tokens.Acquire(ctx, 1); err != nil {
				resultsCh <- outcome{task: task, err: err}
				return
			}
			defer tokens.Release(1)
			resultsCh <- fetchAndParse(ctx, cfg.Fetcher, task)
		}()
	}

	f.admit(seed.String())
	spawn(fetchtask.New(seed, 0))

	errorCount := 0
	for !f.done() {
		result := <-resultsCh
		f.accountFor()
		task := result.task

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
			if !f.admit(link.String()) {
				continue
			}
			spawn(fetchtask.New(link, task.Depth+1))
		}
	}

	logger.Summary("async", f.size(), errorCount, time.Since(start))
	return nil
}
