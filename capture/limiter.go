package capture

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/leetdoc"
	"golang.org/x/time/rate"
)

var _ leetdoc.SiteLimiter = (*SiteLimiter)(nil)

// DefaultRequestsPerSecond keeps captures from a single site polite.
const DefaultRequestsPerSecond = 1.0

// SiteLimiter paces fetches with one token bucket per LeetCode site.
// leetcode.com and www.leetcode.com share a bucket; leetcode.cn has its own.
// A backoff on one page holds every fetch to that site, so concurrent
// captures stop hammering a site that is slow to render.
type SiteLimiter struct {
	mu    sync.Mutex
	sites map[string]*site
	rps   float64
}

type site struct {
	limiter *rate.Limiter
	until   time.Time
}

// NewSiteLimiter creates a SiteLimiter allowing rps fetches per second per
// site, with no bursting.
func NewSiteLimiter(rps float64) *SiteLimiter {
	return &SiteLimiter{
		sites: make(map[string]*site),
		rps:   rps,
	}
}

// Wait blocks until any backoff on the URL's site has passed and the site's
// bucket allows a fetch. URLs without a host are not paced.
func (l *SiteLimiter) Wait(ctx context.Context, rawURL string) error {
	key := SiteKey(rawURL)
	if key == "" {
		return nil
	}

	l.mu.Lock()
	s := l.lookup(key)
	until := s.until
	l.mu.Unlock()

	if d := time.Until(until); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return s.limiter.Wait(ctx)
}

// Backoff holds fetches to the URL's site for at least d. A shorter backoff
// never cuts a longer one short.
func (l *SiteLimiter) Backoff(rawURL string, d time.Duration) {
	key := SiteKey(rawURL)
	if key == "" || d <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.lookup(key)
	if until := time.Now().Add(d); until.After(s.until) {
		s.until = until
	}
}

// lookup returns the state for key, creating it on first use.
// Must be called with mu held.
func (l *SiteLimiter) lookup(key string) *site {
	s, ok := l.sites[key]
	if !ok {
		s = &site{limiter: rate.NewLimiter(rate.Limit(l.rps), 1)}
		l.sites[key] = s
	}
	return s
}

// SiteKey returns the site a URL is paced under: its lowercased host
// without port or a leading "www.". Returns "" if the URL has no host.
func SiteKey(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
