package crawler

import (
	"io"

	"github.com/haldorsen/webcrawl/internal/crawllog"
	"github.com/haldorsen/webcrawl/internal/httpfetch"
)

// Config is shared by all three coordinator variants.
type Config struct {
	// Seed is the validated seed URL, at depth 0.
	Seed string
	// MaxDepth is D: links discovered at depth d are admitted at d+1 only
	// if d < MaxDepth.
	MaxDepth uint16
	// Concurrency is W, the concurrency bound. RunThreaded and RunAsync
	// clamp values below 1 to 1; RunSequential ignores it.
	Concurrency int
	// Fetcher performs the HTTP GETs. Required.
	Fetcher httpfetch.Fetcher
	// Output receives the per-task stdout blocks. Defaults to io.Discard
	// if nil.
	Output io.Writer
	// Logger receives structured log lines. Defaults to a no-op logger.
	Logger *crawllog.Logger
}

func (c Config) clampedConcurrency() int {
	if c.Concurrency < 1 {
		return 1
	}
	return c.Concurrency
}

func (c Config) output() io.Writer {
	if c.Output == nil {
		return io.Discard
	}
	return c.Output
}

func (c Config) logger() *crawllog.Logger {
	if c.Logger == nil {
		return crawllog.Noop()
	}
	return c.Logger
}
