package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagesum"
)

// ContentSource narrows a full page down to its main content HTML.
type ContentSource interface {
	ExtractHTML(html string) (string, error)
}

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor renders a page as Markdown so headings, lists and tables keep
// their markers in the text sent to the model.
type Extractor struct {
	source ContentSource
	conv   *converter.Converter
}

// NewExtractor creates a new Extractor. When source is nil the whole page
// is converted.
func NewExtractor(source ContentSource) *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Extractor{source: source, conv: conv}
}

// Extract converts the page's main content into Markdown.
func (e *Extractor) Extract(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "empty HTML input")
	}

	content := html
	if e.source != nil {
		var err error
		if content, err = e.source.ExtractHTML(html); err != nil {
			return "", err
		}
		if strings.TrimSpace(content) == "" {
			return "", pagesum.Errorf(pagesum.ENOTFOUND, "no main content found")
		}
	}

	return e.conv.ConvertString(content)
}
