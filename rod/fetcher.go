// Package rod fetches publisher pages through a headless Chrome browser.
// It serves table pages that refuse plain HTTP clients.
package rod

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/papertree"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

var _ papertree.Fetcher = (*Fetcher)(nil)

// DefaultMaxPages is the number of pages a browser serves before it is
// replaced. Chrome's memory grows with every page and is never fully
// returned.
const DefaultMaxPages = 75

// Fetcher returns the rendered HTML of a page. It is safe for concurrent
// use; the browser is replaced after MaxPages pages.
type Fetcher struct {
	maxPages int

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxPages sets how many pages a browser serves before it is replaced.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher launches a headless browser. Close must be called to stop it.
// Returns an error if Chrome cannot be found or started.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to url and returns the page HTML once it has loaded.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.acquire()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", papertree.Errorf(papertree.EUNAVAILABLE, "open page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigate %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("load %s: %w", url, err)
	}
	return page.HTML()
}

// Close stops the browser. It is safe to call more than once.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	return f.shutdown()
}

// acquire returns the current browser, replacing it first when it has
// served maxPages pages.
func (f *Fetcher) acquire() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, papertree.Errorf(papertree.EUNAVAILABLE, "browser closed")
	}
	if f.maxPages > 0 && f.pages >= f.maxPages {
		old, oldLauncher := f.browser, f.launcher
		if err := f.launch(); err == nil {
			_ = old.Close()
			oldLauncher.Kill()
			f.pages = 0
		} else {
			f.browser, f.launcher = old, oldLauncher
		}
	}
	f.pages++
	return f.browser, nil
}

// launch starts a browser. Must be called with mu held, or before f is
// shared.
func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return nil
}

func (f *Fetcher) shutdown() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the running browser launcher, or 0.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}
