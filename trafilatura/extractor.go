package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to keep only a page's main content,
// dropping navigation, footers, sidebars and ads.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content as plain text. The detected title is
// prepended unless the content already starts with it.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	result, err := e.extract(rawHTML)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(result.Metadata.Title)
	text := strings.TrimSpace(result.ContentText)
	if title == "" || strings.HasPrefix(text, title) {
		return text, nil
	}
	return title + "\n\n" + text, nil
}

// ExtractHTML returns the main content as clean HTML.
func (e *Extractor) ExtractHTML(rawHTML string) (string, error) {
	result, err := e.extract(rawHTML)
	if err != nil {
		return "", err
	}
	if result.ContentNode == nil {
		return "", nil
	}
	return renderNode(result.ContentNode)
}

func (e *Extractor) extract(rawHTML string) (*trafilatura.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagesum.Errorf(pagesum.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	return trafilatura.Extract(strings.NewReader(rawHTML), opts)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
