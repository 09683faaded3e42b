package rod

import "time"

// DefaultUserAgent is a current desktop Chrome user agent. Headless Chrome
// otherwise announces itself as "HeadlessChrome".
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"

// Default timeouts and delays.
const (
	DefaultPageLoadTimeout = 60 * time.Second
	DefaultImplicitWait    = 60 * time.Second
	DefaultSettleDelay     = 1 * time.Second
	maxScriptTimeout       = 10 * time.Second
)

// Options configures the browser session used by Fetcher.
type Options struct {
	// Bin is the path to a Chrome or Chromium binary.
	// Empty means rod finds a local browser or downloads one.
	Bin string

	// Headless runs Chrome in the new headless mode, which still executes
	// JavaScript and loads most dynamic content.
	Headless bool

	// UserAgent overrides the browser user agent. Empty keeps Chrome's own.
	UserAgent string

	// Stealth hides common automation fingerprints (navigator.webdriver,
	// headless plugins list, WebGL vendor, etc.) from the page.
	Stealth bool

	// DoNotTrack sends "DNT: 1" with every request.
	DoNotTrack bool

	// NoSandbox disables the Chrome sandbox, needed in most containers.
	NoSandbox bool

	// ExtensionDir is an unpacked extension loaded into the browser.
	// It is skipped when the directory does not exist.
	ExtensionDir string

	// PageLoadTimeout bounds navigation.
	PageLoadTimeout time.Duration

	// ScriptTimeout bounds script execution.
	// Zero means min(10s, PageLoadTimeout/2).
	ScriptTimeout time.Duration

	// ImplicitWait bounds waiting for the page load event.
	ImplicitWait time.Duration

	// SettleDelay is slept after navigation and again after scrolling so
	// rendering and lazy-loaded content can catch up.
	SettleDelay time.Duration

	// CaptureNetwork enables the DevTools Network domain. Failure to enable
	// it is logged and ignored.
	CaptureNetwork bool
}

// DefaultOptions returns the options used by the pagesum CLI.
func DefaultOptions() Options {
	return Options{
		Headless:        true,
		UserAgent:       DefaultUserAgent,
		Stealth:         true,
		DoNotTrack:      true,
		NoSandbox:       true,
		PageLoadTimeout: DefaultPageLoadTimeout,
		ScriptTimeout:   ScriptTimeoutFor(DefaultPageLoadTimeout),
		ImplicitWait:    DefaultImplicitWait,
		SettleDelay:     DefaultSettleDelay,
		CaptureNetwork:  true,
	}
}

// ScriptTimeoutFor returns the script timeout derived from a page load
// timeout: half of it, capped at 10 seconds.
func ScriptTimeoutFor(pageLoad time.Duration) time.Duration {
	return min(maxScriptTimeout, pageLoad/2)
}

// withDefaults fills zero timeouts.
func (o Options) withDefaults() Options {
	if o.PageLoadTimeout <= 0 {
		o.PageLoadTimeout = DefaultPageLoadTimeout
	}
	if o.ScriptTimeout <= 0 {
		o.ScriptTimeout = ScriptTimeoutFor(o.PageLoadTimeout)
	}
	if o.ImplicitWait <= 0 {
		o.ImplicitWait = DefaultImplicitWait
	}
	return o
}
