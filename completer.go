package pagesum

import "context"

// Sampling defaults shared by every summarization call.
const (
	DefaultTemperature = 0.2
	DefaultTopP        = 0.85
	DefaultTopK        = 20
)

// CompletionRequest is a single-prompt request to a chat-completion model.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
	TopP        float64
	TopK        int
}

// Completer sends one prompt to a remote language model and returns its
// text answer, trimmed of surrounding whitespace.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
