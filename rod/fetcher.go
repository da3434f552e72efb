// Package rod fetches JavaScript-rendered submission pages with a headless
// Chrome browser.
package rod

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/fwojciec/leetdoc"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements leetdoc.Fetcher at compile time.
var _ leetdoc.Fetcher = (*Fetcher)(nil)

// Default page timings.
const (
	// DefaultFetchTimeout bounds the wait for the page load event.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultRenderWait is the fixed pause after load that lets the
	// submission view render its code and title.
	DefaultRenderWait = 2 * time.Second
)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	pool            *Pool
	launch          LaunchFunc
	fetchTimeout    time.Duration
	renderWait      time.Duration
	pagesPerBrowser int
	closed          atomic.Bool
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout sets how long to wait for the page load event.
// A page that has not finished loading by then is read as it is.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// WithRenderWait sets the fixed pause between page load and reading the HTML.
func WithRenderWait(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.renderWait = d
	}
}

// WithPagesPerBrowser sets how many pages are fetched before the browser
// is replaced.
func WithPagesPerBrowser(n int) FetcherOption {
	return func(f *Fetcher) {
		f.pagesPerBrowser = n
	}
}

// WithLauncher replaces the function that starts Chrome.
func WithLauncher(launch LaunchFunc) FetcherOption {
	return func(f *Fetcher) {
		f.launch = launch
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{
		launch:          LaunchChrome,
		fetchTimeout:    DefaultFetchTimeout,
		renderWait:      DefaultRenderWait,
		pagesPerBrowser: DefaultPagesPerBrowser,
	}
	for _, opt := range opts {
		opt(f)
	}

	pool, err := NewPool(f.launch, f.pagesPerBrowser)
	if err != nil {
		return nil, err
	}
	f.pool = pool

	return f, nil
}

// Fetch navigates to the URL, waits for the page to load and render, and
// returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", leetdoc.Errorf(leetdoc.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, release, err := f.pool.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.Timeout(f.fetchTimeout).WaitLoad(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
	}

	if f.renderWait > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.renderWait):
		}
	}

	return page.HTML()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.pool.Close()
}

// LauncherPID returns the process ID of the current browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.pool.PID()
}
