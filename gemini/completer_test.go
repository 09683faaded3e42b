package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// Ensure Completer implements pagesum.Completer at compile time.
var _ pagesum.Completer = (*gemini.Completer)(nil)

func TestCompleter_Complete_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	completer := gemini.NewCompleter(nil, "") // nil client ok for this test

	_, err := completer.Complete(context.Background(), pagesum.CompletionRequest{Prompt: ""})

	require.Error(t, err)
	assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
	assert.Contains(t, pagesum.ErrorMessage(err), "prompt required")
}

func TestCompleter_Complete_SendsGenerationConfig(t *testing.T) {
	t.Parallel()

	bodies := make(chan map[string]any, 1)
	paths := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		bodies <- payload
		paths <- r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":" Ein Hund läuft. \n"}]}}]}`))
	}))
	defer srv.Close()

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	})
	require.NoError(t, err)

	completer := gemini.NewCompleter(client, "")
	got, err := completer.Complete(context.Background(), pagesum.CompletionRequest{
		Prompt:      "Summarize",
		MaxTokens:   1024,
		Temperature: 0.2,
		TopP:        0.85,
		TopK:        20,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ein Hund läuft.", got)
	assert.True(t, strings.HasSuffix(<-paths, "models/"+gemini.DefaultModel+":generateContent"))

	body := <-bodies
	config, ok := body["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from request")
	assert.InDelta(t, 1024, config["maxOutputTokens"], 0)
	assert.InDelta(t, 0.2, config["temperature"], 0.0001)
	assert.InDelta(t, 0.85, config["topP"], 0.0001)
	assert.InDelta(t, 20, config["topK"], 0)
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("maps sampling parameters", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(pagesum.CompletionRequest{
			MaxTokens:   100,
			Temperature: 0.2,
			TopP:        0.85,
			TopK:        20,
		})

		require.NotNil(t, config.Temperature)
		require.NotNil(t, config.TopP)
		require.NotNil(t, config.TopK)
		assert.InDelta(t, 0.2, *config.Temperature, 0.001)
		assert.InDelta(t, 0.85, *config.TopP, 0.001)
		assert.InDelta(t, 20, *config.TopK, 0.001)
		assert.Equal(t, int32(100), config.MaxOutputTokens)
	})

	t.Run("omits top-k when unset", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(pagesum.CompletionRequest{MaxTokens: 10})

		assert.Nil(t, config.TopK)
	})
}
