// Package goquery extracts plain text from rendered HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesum"
	"golang.org/x/net/html"
)

// nonContent lists elements whose text never reaches the reader.
const nonContent = "script, style, noscript, template"

// Ensure TextExtractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*TextExtractor)(nil)

// TextExtractor strips all markup from a page and returns its visible text.
// Each text node is whitespace-normalized and non-empty nodes are joined
// with single spaces, so "<p>Hello <b>world</b></p>" becomes "Hello world".
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the tag-stripped text of rawHTML.
func (e *TextExtractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(nonContent).Remove()

	var parts []string
	for _, n := range doc.Nodes {
		parts = appendText(parts, n)
	}
	return strings.Join(parts, " "), nil
}

// appendText walks n depth-first and appends each normalized text node.
func appendText(parts []string, n *html.Node) []string {
	switch n.Type {
	case html.TextNode:
		if s := strings.Join(strings.Fields(n.Data), " "); s != "" {
			parts = append(parts, s)
		}
		return parts
	case html.CommentNode, html.DoctypeNode:
		return parts
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = appendText(parts, c)
	}
	return parts
}
