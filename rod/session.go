package rod

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// session is one running browser process and the connection to it.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	stealth  bool
	closed   atomic.Bool
}

// launchSession starts a browser configured from opts and connects to it.
func launchSession(opts Options) (*session, error) {
	l := newLauncher(opts)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &session{browser: browser, launcher: l, stealth: opts.Stealth}, nil
}

// newLauncher translates opts into Chrome command-line flags.
func newLauncher(opts Options) *launcher.Launcher {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		NoSandbox(opts.NoSandbox)

	if opts.Headless {
		l = l.HeadlessNew(true)
	} else {
		l = l.Headless(false)
	}
	if opts.Bin != "" {
		l = l.Bin(opts.Bin)
	}
	if opts.Stealth {
		l = l.Set("disable-blink-features", "AutomationControlled")
	}
	if opts.UserAgent != "" {
		l = l.Set("user-agent", opts.UserAgent)
	}
	if extensionExists(opts.ExtensionDir) {
		l = l.Delete("disable-extensions").
			Set("load-extension", opts.ExtensionDir).
			Set("disable-extensions-except", opts.ExtensionDir)
	}
	return l
}

func extensionExists(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// newPage opens a blank tab, with stealth scripts injected when enabled.
func (s *session) newPage() (*rod.Page, error) {
	if s.stealth {
		return stealth.Page(s.browser)
	}
	return s.browser.Page(proto.TargetCreateTarget{})
}

// Close shuts down the browser and kills the launcher process.
// Close is safe to call multiple times.
func (s *session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := s.browser.Close()
	s.launcher.Kill()
	return err
}
