package scrape

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/pagesum"
)

// ErrorPrefix starts every failure string returned by Pipeline.Summarize.
const ErrorPrefix = "Error: "

// Pipeline fetches the configured URL and summarizes it.
//
// Summarize never returns a Go error. Failures come back as a string
// starting with ErrorPrefix so callers can print the result either way.
type Pipeline struct {
	Pages      *PageFetcher
	Summarizer pagesum.Summarizer
	Logger     *slog.Logger

	req    pagesum.FetchRequest
	urlErr error
}

// SetURL normalizes raw and stores it as the page to summarize.
// An invalid URL is remembered and reported by Summarize; a blank one
// clears the URL.
func (p *Pipeline) SetURL(raw string) *Pipeline {
	if strings.TrimSpace(raw) == "" {
		p.req, p.urlErr = pagesum.FetchRequest{}, nil
		return p
	}
	p.req, p.urlErr = pagesum.NewFetchRequest(raw)
	return p
}

// URL returns the normalized URL, or "" when none is set.
func (p *Pipeline) URL() string {
	return p.req.URL()
}

// Summarize runs fetch then summarize and returns the summary, or an
// "Error: <message>" string on any failure.
func (p *Pipeline) Summarize(ctx context.Context) string {
	if p.urlErr != nil {
		return p.fail("invalid url", p.urlErr)
	}
	if p.req.IsZero() {
		return ErrorPrefix + "No URL provided"
	}

	text, err := p.Pages.Fetch(ctx, p.req)
	if err != nil {
		return p.fail("fetch failed", err)
	}
	p.logger().Debug("page text ready", "url", p.req.URL(), "chars", len(text))

	summary, err := p.Summarizer.Summarize(ctx, text)
	if err != nil {
		return p.fail("summarize failed", err)
	}
	return summary
}

func (p *Pipeline) fail(msg string, err error) string {
	p.logger().Error(msg, "url", p.req.URL(), "err", err)
	return ErrorPrefix + pagesum.ErrorMessage(err)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
