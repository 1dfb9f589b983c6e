package crawler

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/haldorsen/webcrawl/internal/fetchtask"
	"golang.org/x/sync/errgroup"
)

// RunThreaded is Variant T: W worker goroutines plus one coordinator
// goroutine, communicating over two channels. frontierCh is a small,
// fixed-size handoff buffer for work actually ready to dispatch — it is
// not where the frontier lives. Newly admitted tasks that don't fit are
// held in pending, a coordinator-owned slice with no size limit, the Go
// analogue of the Rust variant's mpsc::unbounded_channel. Each iteration
// of the dispatch loop offers the head of pending to frontierCh and
// drains resultsCh in the same select, so the coordinator is never
// blocked trying to hand off work while results pile up undrained
// (§4.4.5, §9). resultsCh is buffered to W for natural backpressure.
// Worker lifecycle is managed with an errgroup rather than a bare
// sync.WaitGroup so a worker's unexpected error surfaces through Wait(),
// the same shape used by fwojciec-locdoc/crawl/crawl.go's fetch pool.
func RunThreaded(ctx context.Context, cfg Config) error {
	seed, err := url.Parse(cfg.Seed)
	if err != nil {
		return fmt.Errorf("invalid seed URL: %w", err)
	}

	w := cfg.clampedConcurrency()
	start := time.Now()
	logger := cfg.logger().WithRun(uuid.NewString())
	out := cfg.output()

	frontierCh := make(chan *fetchtask.Task, w)
	resultsCh := make(chan outcome, w)

	group, workerCtx := errgroup.WithContext(ctx)
	for i := 0; i < w; i++ {
		group.Go(func() error {
			for task := range frontierCh {
				result := fetchAndParse(workerCtx, cfg.Fetcher, task)
				// A worker must never block on a full resultsCh once the
				// coordinator has stopped draining it (cancellation): that
				// would leave frontierCh's close() unable to unblock this
				// goroutine and group.Wait() would hang forever.
				select {
				case resultsCh <- result:
				case <-workerCtx.Done():
					return workerCtx.Err()
				}
			}
			return nil
		})
	}

	f := newFrontier()
	var pending []*fetchtask.Task

	f.admit(seed.String())
	pending = append(pending, fetchtask.New(seed, 0))

	handleResult := func(result outcome) {
		f.accountFor()
		task := result.task

		if result.err != nil {
			logger.FetchFailed(task.URL.String(), task.Depth, result.err)
			writeBlock(out, task)
			return
		}

		writeBlock(out, task)
		logger.Fetched(task.URL.String(), task.Depth, task.Result.Status, task.Result.ContentType, task.Result.LinkCount)

		if task.Depth >= cfg.MaxDepth {
			return
		}
		for _, link := range result.links {
			if !f.admit(link.String()) {
				continue
			}
			pending = append(pending, fetchtask.New(link, task.Depth+1))
		}
	}

	errorCount := 0
	var loopErr error
loop:
	for !f.done() {
		if len(pending) > 0 {
			next := pending[0]
			select {
			case <-ctx.Done():
				loopErr = ctx.Err()
				break loop
			case frontierCh <- next:
				pending = pending[1:]
			case result := <-resultsCh:
				if result.err != nil {
					errorCount++
				}
				handleResult(result)
			}
			continue
		}

		select {
		case <-ctx.Done():
			loopErr = ctx.Err()
			break loop
		case result := <-resultsCh:
			if result.err != nil {
				errorCount++
			}
			handleResult(result)
		}
	}

	close(frontierCh)
	if err := group.Wait(); err != nil && loopErr == nil {
		loopErr = err
	}
	if loopErr != nil {
		return loopErr
	}

	logger.Summary("threads", f.size(), errorCount, time.Since(start))
	return nil
}
