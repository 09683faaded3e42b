package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/pagesum"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements pagesum.Completer at compile time.
var _ pagesum.Completer = (*Completer)(nil)

// Completer implements pagesum.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model means DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends the prompt as a single user turn and returns the trimmed answer.
func (c *Completer) Complete(ctx context.Context, req pagesum.CompletionRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(req.Prompt),
		BuildConfig(req),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagesum.Errorf(pagesum.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig maps a completion request onto Gemini generation settings.
func BuildConfig(req pagesum.CompletionRequest) *genai.GenerateContentConfig {
	temp := float32(req.Temperature)
	topP := float32(req.TopP)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.TopK > 0 {
		topK := float32(req.TopK)
		config.TopK = &topK
	}
	return config
}
