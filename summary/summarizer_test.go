package summary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/mock"
	"github.com/fwojciec/pagesum/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCompleter answers each call with the next reply and records requests.
func scriptedCompleter(replies ...string) (*mock.Completer, *[]pagesum.CompletionRequest) {
	var calls []pagesum.CompletionRequest
	return &mock.Completer{
		CompleteFn: func(_ context.Context, req pagesum.CompletionRequest) (string, error) {
			calls = append(calls, req)
			if len(calls) > len(replies) {
				return "", errors.New("unexpected completion call")
			}
			return replies[len(calls)-1], nil
		},
	}, &calls
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("detects language then summarizes in it", func(t *testing.T) {
		t.Parallel()

		completer, calls := scriptedCompleter("German", "Ein Hund läuft.")
		s := summary.NewSummarizer(completer)

		got, err := s.Summarize(context.Background(), "Der Hund läuft schnell.")

		require.NoError(t, err)
		assert.Equal(t, "Ein Hund läuft.", got)
		require.Len(t, *calls, 2)

		first, second := (*calls)[0], (*calls)[1]
		assert.Equal(t, 100, first.MaxTokens)
		assert.Equal(t, 1024, second.MaxTokens)
		assert.Contains(t, first.Prompt, "Der Hund läuft schnell.")
		assert.Contains(t, second.Prompt, "in German")
		assert.Contains(t, second.Prompt, "Der Hund läuft schnell.")
	})

	t.Run("uses the same sampling for both calls", func(t *testing.T) {
		t.Parallel()

		completer, calls := scriptedCompleter("Language: English", "Summary.")
		s := summary.NewSummarizer(completer)

		_, err := s.Summarize(context.Background(), "The dog runs.")

		require.NoError(t, err)
		for _, req := range *calls {
			assert.InDelta(t, 0.2, req.Temperature, 0.0001)
			assert.InDelta(t, 0.85, req.TopP, 0.0001)
			assert.Equal(t, 20, req.TopK)
		}
	})

	t.Run("strips the language label before summarizing", func(t *testing.T) {
		t.Parallel()

		completer, calls := scriptedCompleter("Language: French", "Résumé.")
		s := summary.NewSummarizer(completer)

		_, err := s.Summarize(context.Background(), "Le chien court.")

		require.NoError(t, err)
		assert.Contains(t, (*calls)[1].Prompt, "in French as continuous prose")
		assert.NotContains(t, (*calls)[1].Prompt, "Language: French")
	})

	t.Run("propagates language detection error without summarizing", func(t *testing.T) {
		t.Parallel()

		calls := 0
		completer := &mock.Completer{
			CompleteFn: func(context.Context, pagesum.CompletionRequest) (string, error) {
				calls++
				return "", errors.New("401 Unauthorized")
			},
		}

		_, err := summary.NewSummarizer(completer).Summarize(context.Background(), "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "401 Unauthorized")
		assert.Equal(t, 1, calls)
	})

	t.Run("propagates summary error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		completer := &mock.Completer{
			CompleteFn: func(context.Context, pagesum.CompletionRequest) (string, error) {
				calls++
				if calls == 2 {
					return "", errors.New("connection reset")
				}
				return "English", nil
			},
		}

		_, err := summary.NewSummarizer(completer).Summarize(context.Background(), "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("rejects empty text without calling the model", func(t *testing.T) {
		t.Parallel()

		completer, calls := scriptedCompleter()

		_, err := summary.NewSummarizer(completer).Summarize(context.Background(), " ")

		require.Error(t, err)
		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
		assert.Empty(t, *calls)
	})

	t.Run("fails when the model names no language", func(t *testing.T) {
		t.Parallel()

		completer, _ := scriptedCompleter("Language:")

		_, err := summary.NewSummarizer(completer).Summarize(context.Background(), "text")

		require.Error(t, err)
		assert.Equal(t, pagesum.EINTERNAL, pagesum.ErrorCode(err))
	})
}

func TestSummarizer_CreateSummary_TrimsOutput(t *testing.T) {
	t.Parallel()

	completer, _ := scriptedCompleter("\n  First paragraph.\n\nSecond paragraph.  \n")

	got, err := summary.NewSummarizer(completer).CreateSummary(context.Background(), "text", "English")

	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", got)
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{name: "labelled", answer: "Language: German", want: "German"},
		{name: "bare name", answer: "German", want: "German"},
		{name: "lowercase label", answer: "language: spanish", want: "spanish"},
		{name: "markdown emphasis", answer: "**Language:** Italian.", want: "Italian"},
		{name: "italic label", answer: "_Language:_ Polish", want: "Polish"},
		{name: "bold label after chatter", answer: "Here you go.\n**Language**: Czech", want: "Czech"},
		{name: "labelled line after chatter", answer: "Sure!\nLanguage: Polish", want: "Polish"},
		{name: "first line without label", answer: "\n Dutch \nbecause most words are Dutch", want: "Dutch"},
		{name: "empty", answer: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, summary.ParseLanguage(tt.answer))
		})
	}
}

func TestBuildLanguagePrompt(t *testing.T) {
	t.Parallel()

	prompt := summary.BuildLanguagePrompt("Der Hund läuft.")

	assert.Contains(t, prompt, "Language: <language>")
	assert.Contains(t, prompt, "most words")
	assert.Contains(t, prompt, "Text:\nDer Hund läuft.")
}

func TestBuildSummaryPrompt(t *testing.T) {
	t.Parallel()

	prompt := summary.BuildSummaryPrompt("Der Hund läuft.", "German")

	assert.Contains(t, prompt, "in German as continuous prose")
	assert.Contains(t, prompt, "300 words")
	assert.Contains(t, prompt, "no translation")
	assert.Contains(t, prompt, "Der Hund läuft.")
	assert.Contains(t, prompt, "blank line")
}
