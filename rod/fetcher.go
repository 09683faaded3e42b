package rod

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/pagesum"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// scrollToBottom triggers lazy-loaded content.
const scrollToBottom = `() => window.scrollTo(0, document.body.scrollHeight)`

// Ensure Fetcher implements pagesum.Fetcher at compile time.
var _ pagesum.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
//
// The browser is launched lazily by the first Fetch and stays up until Close,
// which may be called from another goroutine to abort a fetch in progress.
type Fetcher struct {
	opts   Options
	logger *slog.Logger

	mu      sync.Mutex
	session *session
}

// NewFetcher creates a Fetcher. No browser is started until Fetch is called.
// A nil logger discards log output.
func NewFetcher(opts Options, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{opts: opts.withDefaults(), logger: logger}
}

// Fetch navigates to the URL, scrolls to the bottom of the document and
// returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s, err := f.acquire()
	if err != nil {
		return "", err
	}

	page, err := s.newPage()
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := f.prepare(page); err != nil {
		return "", err
	}

	if err := withTimeout(page, f.opts.PageLoadTimeout, func(p *rod.Page) error {
		return p.Navigate(url)
	}); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}

	if err := withTimeout(page, f.opts.ImplicitWait, func(p *rod.Page) error {
		return p.WaitLoad()
	}); err != nil {
		return "", fmt.Errorf("waiting for %s to load: %w", url, err)
	}

	if err := sleep(ctx, f.opts.SettleDelay); err != nil {
		return "", err
	}

	if err := withTimeout(page, f.opts.ScriptTimeout, func(p *rod.Page) error {
		_, err := p.Eval(scrollToBottom)
		return err
	}); err != nil {
		return "", fmt.Errorf("scrolling %s: %w", url, err)
	}

	if err := sleep(ctx, f.opts.SettleDelay); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading page source: %w", err)
	}

	return html, nil
}

// prepare applies per-page settings before navigation.
func (f *Fetcher) prepare(page *rod.Page) error {
	if f.opts.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: f.opts.UserAgent,
		}); err != nil {
			return fmt.Errorf("setting user agent: %w", err)
		}
	}

	if f.opts.DoNotTrack {
		if _, err := page.SetExtraHeaders([]string{"DNT", "1"}); err != nil {
			return fmt.Errorf("setting DNT header: %w", err)
		}
	}

	if f.opts.CaptureNetwork {
		if err := (proto.NetworkEnable{}).Call(page); err != nil {
			f.logger.Warn("network capture unavailable", "err", err)
		}
	}

	return nil
}

// acquire returns the running session, launching one if needed.
func (f *Fetcher) acquire() (*session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.session != nil {
		return f.session, nil
	}

	s, err := launchSession(f.opts)
	if err != nil {
		return nil, err
	}
	f.session = s
	return s, nil
}

// Close releases the browser session, if any. Close is safe to call
// multiple times; a later Fetch launches a new browser.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	s := f.session
	f.session = nil
	f.mu.Unlock()

	if s == nil {
		return nil
	}
	return s.Close()
}

// LauncherPID returns the process ID of the running browser launcher, or 0
// when no session is open.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return 0
	}
	return f.session.launcher.PID()
}

// withTimeout runs fn against a copy of page bounded by d.
func withTimeout(page *rod.Page, d time.Duration, fn func(*rod.Page) error) error {
	p := page.Timeout(d)
	defer p.CancelTimeout()
	return fn(p)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
