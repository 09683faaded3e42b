package readability

import (
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract an article's text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title followed by its text content.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.Title + "\n\n" + article.TextContent), nil
}
