package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesum"
)

// Ensure LoggingCompleter implements pagesum.Completer.
var _ pagesum.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging. Prompts are not logged.
type LoggingCompleter struct {
	next   pagesum.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next pagesum.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete logs the request limits and response size.
func (c *LoggingCompleter) Complete(ctx context.Context, req pagesum.CompletionRequest) (out string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("completion",
			"max_tokens", req.MaxTokens,
			"prompt_chars", len(req.Prompt),
			"chars", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, req)
}
