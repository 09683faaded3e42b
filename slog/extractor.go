package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagesum"
)

// Ensure LoggingExtractor implements pagesum.Extractor.
var _ pagesum.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pagesum.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagesum.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs input and output sizes.
func (e *LoggingExtractor) Extract(html string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"bytes_in", len(html),
			"bytes_out", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
