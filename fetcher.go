package pagesum

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for JavaScript to render,
	// and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any browser session opened by Fetch.
	// It is safe to call Close more than once; a later Fetch starts a new session.
	Close() error
}

// FetchRequest identifies the page to fetch. The URL is normalized when the
// request is built and cannot be changed afterwards.
type FetchRequest struct {
	url string
}

// NewFetchRequest normalizes rawURL and returns a request for it.
func NewFetchRequest(rawURL string) (FetchRequest, error) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return FetchRequest{}, err
	}
	return FetchRequest{url: u}, nil
}

// URL returns the normalized URL.
func (r FetchRequest) URL() string {
	return r.url
}

// IsZero reports whether the request was never set.
func (r FetchRequest) IsZero() bool {
	return r.url == ""
}
