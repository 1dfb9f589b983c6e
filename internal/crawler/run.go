package crawler

import (
	"context"
	"fmt"
)

// Mode selects which coordinator realization executes a crawl.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeThreads    Mode = "threads"
	ModeAsync      Mode = "async"
)

// Run dispatches to the coordinator variant named by mode. The three
// variants share a contract (admit, drain-one-result, done), not code —
// Run is a thin selector, not a runtime-dispatched shared implementation.
func Run(ctx context.Context, mode Mode, cfg Config) error {
	switch mode {
	case ModeSequential:
		return RunSequential(ctx, cfg)
	case ModeThreads, "":
		return RunThreaded(ctx, cfg)
	case ModeAsync:
		return RunAsync(ctx, cfg)
	default:
		return fmt.Errorf("unknown crawl mode %q", mode)
	}
}
