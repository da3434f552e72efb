package leetdoc

import (
	"context"
	"time"
)

// SiteLimiter paces page fetches per LeetCode site.
type SiteLimiter interface {
	// Wait blocks until a fetch of rawURL is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, rawURL string) error

	// Backoff holds every fetch from rawURL's site for at least d, such as
	// after a page came back without its code rendered.
	Backoff(rawURL string, d time.Duration)
}
