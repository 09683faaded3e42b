// Package openai implements pagesum.Completer against OpenAI-compatible
// chat-completion endpoints. The default endpoint is Nebius AI Studio.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Nebius AI Studio defaults.
const (
	DefaultBaseURL = "https://api.studio.nebius.com/v1/"
	DefaultModel   = "mistralai/Mixtral-8x7B-Instruct-v0.1-fast"
)

// Ensure Completer implements pagesum.Completer at compile time.
var _ pagesum.Completer = (*Completer)(nil)

// Completer sends single-message chat completions.
type Completer struct {
	client openai.Client
	model  string
}

// NewClient returns a client for an OpenAI-compatible endpoint. An empty
// baseURL means DefaultBaseURL. The key is not validated here; a missing
// or wrong key surfaces as an authentication error on the first request.
func NewClient(apiKey, baseURL string, opts ...option.RequestOption) openai.Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}, opts...)
	return openai.NewClient(opts...)
}

// NewCompleter creates a Completer for model. An empty model means DefaultModel.
func NewCompleter(client openai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends req.Prompt as a single user message and returns the
// trimmed text of the first choice.
func (c *Completer) Complete(ctx context.Context, req pagesum.CompletionRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "prompt required")
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
		TopP:        openai.Float(req.TopP),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	// top_k is not part of the OpenAI schema but is honored by Nebius and
	// most other OpenAI-compatible servers.
	var opts []option.RequestOption
	if req.TopK > 0 {
		opts = append(opts, option.WithJSONSet("top_k", req.TopK))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, opts...)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", pagesum.Errorf(pagesum.EINTERNAL, "model returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
