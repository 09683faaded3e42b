package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesum"
)

// Ensure LoggingFetcher implements pagesum.Fetcher.
var _ pagesum.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pagesum.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagesum.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close logs and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() (err error) {
	defer func() {
		f.logger.Debug("fetcher closed", "err", err)
	}()
	return f.next.Close()
}
