package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pagesum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.SummarizeFn(ctx, text)
}
