package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/pagesum"
)

// PageFetcher fetches one page and turns it into prompt-ready text.
type PageFetcher struct {
	Fetcher   pagesum.Fetcher
	Extractor pagesum.Extractor
	// MaxWords caps the number of words kept. Zero means no limit.
	MaxWords int
}

// Fetch retrieves req's page, extracts its text and prepares it for the
// model. The Fetcher is closed before Fetch returns, whatever the outcome.
func (p *PageFetcher) Fetch(ctx context.Context, req pagesum.FetchRequest) (text string, err error) {
	defer func() {
		if cerr := p.Fetcher.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close fetcher: %w", cerr))
		}
	}()

	if req.IsZero() {
		return "", pagesum.Errorf(pagesum.EINVALID, "No URL provided")
	}

	html, err := p.Fetcher.Fetch(ctx, req.URL())
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", req.URL(), err)
	}

	raw, err := p.Extractor.Extract(html)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", req.URL(), err)
	}

	text = pagesum.PrepareText(raw, p.MaxWords)
	if strings.TrimSpace(text) == "" {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, "no text content at %s", req.URL())
	}
	return text, nil
}
