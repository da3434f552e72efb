package mock

import (
	"context"
	"time"

	"github.com/fwojciec/leetdoc"
)

var _ leetdoc.SiteLimiter = (*SiteLimiter)(nil)

// SiteLimiter is a mock implementation of leetdoc.SiteLimiter.
type SiteLimiter struct {
	WaitFn    func(ctx context.Context, rawURL string) error
	BackoffFn func(rawURL string, d time.Duration)
}

func (l *SiteLimiter) Wait(ctx context.Context, rawURL string) error {
	return l.WaitFn(ctx, rawURL)
}

func (l *SiteLimiter) Backoff(rawURL string, d time.Duration) {
	l.BackoffFn(rawURL, d)
}
