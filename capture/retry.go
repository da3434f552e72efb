package capture

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/leetdoc"
)

// DefaultRetryDelays returns the backoff delays between capture attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retry calls fn until it succeeds, fails with an error that retryable
// rejects, or the delays are exhausted. It makes len(delays)+1 attempts at
// most, sleeping delays[i] after failed attempt i.
func Retry[T any](ctx context.Context, delays []time.Duration, retryable func(error) bool, logger *slog.Logger, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !retryable(err) {
			break
		}

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		if logger != nil {
			logger.Debug("retrying", "attempt", attempt+2, "delay", delays[attempt], "error", err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, lastErr
}

// IsRetryable reports whether a failed capture attempt may succeed when the
// page is fetched again. Fetch failures and pages that have not finished
// rendering their code or title are retried; a page that is not a submission,
// or whose code is invalid, is not.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch leetdoc.ErrorCode(err) {
	case leetdoc.EINTERNAL, leetdoc.ENOCODE, leetdoc.ENONAME:
		return true
	default:
		return false
	}
}
