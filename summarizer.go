package pagesum

import "context"

// Summarizer turns page text into a summary written in the text's
// dominant language.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
