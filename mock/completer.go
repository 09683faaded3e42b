package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.Completer = (*Completer)(nil)

// Completer is a mock implementation of pagesum.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req pagesum.CompletionRequest) (string, error)
}

func (c *Completer) Complete(ctx context.Context, req pagesum.CompletionRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}
