// Package crawllog provides the structured logger shared by all three
// coordinator variants.
package crawllog

import (
	"time"

	"go.uber.org/zap"
)

// Logger wraps a *zap.Logger with the field names the crawler emits
// consistently across variants.
type Logger struct {
	z *zap.Logger
}

// New builds a production-configured logger. Callers should defer Sync().
func New() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// Noop returns a Logger that discards everything, used by tests and by
// library callers that don't want crawler log lines on their own stderr.
func Noop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

// WithRun returns a child logger tagging every line with a run ID.
func (l *Logger) WithRun(runID string) *Logger {
	return &Logger{z: l.z.With(zap.String("run_id", runID))}
}

// FetchFailed logs a transport error for one task. Per §7, this never
// aborts the crawl.
func (l *Logger) FetchFailed(url string, depth uint16, err error) {
	l.z.Warn("fetch failed",
		zap.String("url", url),
		zap.Uint16("depth", depth),
		zap.Error(err),
	)
}

// Fetched logs a successful fetch at debug level.
func (l *Logger) Fetched(url string, depth uint16, status int, contentType string, linkCount int) {
	l.z.Debug("fetched",
		zap.String("url", url),
		zap.Uint16("depth", depth),
		zap.Int("status", status),
		zap.String("content_type", contentType),
		zap.Int("link_count", linkCount),
	)
}

// Summary logs the end-of-run totals.
func (l *Logger) Summary(mode string, visited, errors int, duration time.Duration) {
	l.z.Info("crawl complete",
		zap.String("mode", mode),
		zap.Int("visited", visited),
		zap.Int("errors", errors),
		zap.Duration("duration", duration),
	)
}
