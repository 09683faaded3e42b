// Package summary builds the language-detection and summary prompts and
// runs them against a pagesum.Completer.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagesum"
)

// Output limits for the two model calls.
const (
	LanguageMaxTokens = 100
	SummaryMaxTokens  = 1024
)

// languageLabel prefixes the model's language answer.
const languageLabel = "Language:"

// emphasisStripper removes Markdown emphasis so "**Language:** X" parses.
var emphasisStripper = strings.NewReplacer("*", "", "_", "", "`", "")

// Ensure Summarizer implements pagesum.Summarizer at compile time.
var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer detects the dominant language of a text and summarizes the
// text in that language.
type Summarizer struct {
	completer pagesum.Completer
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(completer pagesum.Completer) *Summarizer {
	return &Summarizer{completer: completer}
}

// Summarize detects the language of text, then summarizes text in it.
// Only the summary is returned.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	language, err := s.DetectLanguage(ctx, text)
	if err != nil {
		return "", err
	}
	return s.CreateSummary(ctx, text, language)
}

// DetectLanguage asks the model for the statistically dominant language of
// text and returns its name with the "Language:" label removed.
func (s *Summarizer) DetectLanguage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "text required")
	}

	answer, err := s.completer.Complete(ctx, request(BuildLanguagePrompt(text), LanguageMaxTokens))
	if err != nil {
		return "", err
	}

	language := ParseLanguage(answer)
	if language == "" {
		return "", pagesum.Errorf(pagesum.EINTERNAL, "model returned no language")
	}
	return language, nil
}

// CreateSummary asks the model to summarize text in language.
// The language is used verbatim as an instruction, not validated.
func (s *Summarizer) CreateSummary(ctx context.Context, text, language string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "text required")
	}

	summary, err := s.completer.Complete(ctx, request(BuildSummaryPrompt(text, language), SummaryMaxTokens))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

func request(prompt string, maxTokens int) pagesum.CompletionRequest {
	return pagesum.CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: pagesum.DefaultTemperature,
		TopP:        pagesum.DefaultTopP,
		TopK:        pagesum.DefaultTopK,
	}
}

// BuildLanguagePrompt builds the language-detection prompt.
func BuildLanguagePrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Determine the main language of the text below. Ignore its content, topic and subject matter entirely. ")
	sb.WriteString("Count the words: choose the language that the most words belong to, even when several languages are mixed. ")
	sb.WriteString("Do not infer the language from the people, places or organizations it mentions.\n\n")
	sb.WriteString("Answer with exactly one line in this form and nothing else, no explanation, no introduction, no justification:\n\n")
	fmt.Fprintf(&sb, "%s <language>\n\n", languageLabel)
	fmt.Fprintf(&sb, "Text:\n%s\n", text)
	return sb.String()
}

// BuildSummaryPrompt builds the summary prompt for language.
func BuildSummaryPrompt(text, language string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Read the following text and summarize its content briefly and precisely in %s as continuous prose. ", language)
	sb.WriteString("Keep the summary to at most 300 words where that is appropriate. ")
	fmt.Fprintf(&sb, "Return only the summary in %s: no introduction, no original text, no explanation, no translation.\n\n", language)
	fmt.Fprintf(&sb, "%s\n\n", text)
	sb.WriteString("Divide the summary into paragraphs and separate each paragraph with a blank line to improve readability.")
	return sb.String()
}

// ParseLanguage extracts the language name from a model answer such as
// "Language: German". Answers without the label are used as-is; when the
// model adds extra lines, the labelled line wins, otherwise the first
// non-empty line is taken.
func ParseLanguage(answer string) string {
	var first string
	for line := range strings.Lines(answer) {
		line = strings.TrimSpace(emphasisStripper.Replace(line))
		if line == "" {
			continue
		}
		if first == "" {
			first = line
		}
		if rest, ok := cutPrefixFold(line, languageLabel); ok {
			return cleanLanguage(rest)
		}
	}
	return cleanLanguage(first)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// cleanLanguage drops surrounding whitespace and trailing periods.
func cleanLanguage(s string) string {
	return strings.Trim(s, " \t.")
}
