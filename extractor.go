package pagesum

// Extractor reduces rendered HTML to the text that gets summarized.
type Extractor interface {
	// Extract processes raw HTML and returns its text content with
	// whitespace normalized to single spaces (or Markdown for
	// structure-preserving implementations).
	Extract(html string) (string, error)
}
