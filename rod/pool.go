package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/leetdoc"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultPagesPerBrowser is how many submission pages one browser renders
// before it is replaced. Chrome's memory baseline grows with every page it
// renders, even after the page is closed.
const DefaultPagesPerBrowser = 40

// Browser is a running Chrome instance.
type Browser struct {
	*rod.Browser

	// PID is the launcher process ID, or 0 if unknown.
	PID int

	// Shutdown stops the browser and its launcher process.
	Shutdown func() error
}

// LaunchFunc starts a new browser.
type LaunchFunc func() (*Browser, error)

// generation tracks the pages leased from one browser.
type generation struct {
	*Browser
	leased  int
	retired bool
	stopped bool
}

func (g *generation) stop() error {
	if g.stopped {
		return nil
	}
	g.stopped = true
	if g.Shutdown == nil {
		return nil
	}
	return g.Shutdown()
}

// Pool leases browsers to concurrent page fetches. Once the current browser
// has served pagesPerBrowser pages it is retired and a fresh one launched.
// A retired browser keeps running until its last lease is released, so the
// other pages of a batch capture finish rendering on it.
//
// Pool is safe for concurrent use.
type Pool struct {
	mu              sync.Mutex
	launch          LaunchFunc
	pagesPerBrowser int
	current         *generation
	served          int
	closed          bool
}

// NewPool launches the first browser and returns a pool that replaces it
// every pagesPerBrowser pages. Values below 1 use DefaultPagesPerBrowser.
func NewPool(launch LaunchFunc, pagesPerBrowser int) (*Pool, error) {
	if pagesPerBrowser < 1 {
		pagesPerBrowser = DefaultPagesPerBrowser
	}
	p := &Pool{launch: launch, pagesPerBrowser: pagesPerBrowser}
	if err := p.replace(); err != nil {
		return nil, err
	}
	return p, nil
}

// Acquire leases the current browser for one page, replacing it first if
// it has served its share. release must be called once the page is closed.
// If a replacement fails to launch, the old browser keeps serving.
func (p *Pool) Acquire() (browser *rod.Browser, release func(), err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, nil, leetdoc.Errorf(leetdoc.EINVALID, "browser pool is closed")
	}
	if p.current == nil || p.served >= p.pagesPerBrowser {
		if err := p.replace(); err != nil && p.current == nil {
			return nil, nil, err
		}
	}

	g := p.current
	g.leased++
	p.served++

	var once sync.Once
	return g.Browser.Browser, func() {
		once.Do(func() { p.release(g) })
	}, nil
}

// PID returns the launcher process ID of the current browser, or 0 once
// the pool is closed.
func (p *Pool) PID() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return 0
	}
	return p.current.PID
}

// Close stops the current browser. Retired browsers stop when their
// remaining leases are released. Close is safe to call multiple times.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	g := p.current
	p.current = nil
	if g == nil {
		return nil
	}
	return g.stop()
}

// replace launches a browser and retires the current one.
// Must be called with mu held.
func (p *Pool) replace() error {
	next, err := p.launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	if old := p.current; old != nil {
		old.retired = true
		if old.leased == 0 {
			_ = old.stop()
		}
	}
	p.current = &generation{Browser: next}
	p.served = 0
	return nil
}

func (p *Pool) release(g *generation) {
	p.mu.Lock()
	defer p.mu.Unlock()

	g.leased--
	if g.retired && g.leased == 0 {
		_ = g.stop()
	}
}

// LaunchChrome starts headless Chrome with flags that keep background
// pages rendering at full speed.
func LaunchChrome() (*Browser, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, err
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Browser{
		Browser: b,
		PID:     l.PID(),
		Shutdown: func() error {
			err := b.Close()
			l.Kill()
			return err
		},
	}, nil
}
