package pagesum

import "strings"

// DefaultMaxWords is the number of words kept from a page before it is sent
// to the model.
const DefaultMaxWords = 5000

var quoteStripper = strings.NewReplacer("'", "", `"`, "")

// TruncateWords collapses whitespace in text and keeps at most n words.
// A non-positive n keeps every word.
func TruncateWords(text string, n int) string {
	words := strings.Fields(text)
	if n > 0 && len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// StripQuotes removes single and double quote characters so page text can be
// embedded in prompt templates.
func StripQuotes(text string) string {
	return quoteStripper.Replace(text)
}

// PrepareText turns extracted page text into prompt-ready text: at most
// maxWords words, single-spaced, without quote characters.
func PrepareText(text string, maxWords int) string {
	return StripQuotes(TruncateWords(text, maxWords))
}
