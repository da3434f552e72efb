// Package capture orchestrates turning submission URLs into stored problems.
// It coordinates rate limiting, fetching, parsing, extraction with
// page-readiness retries, duplicate detection, and storage.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/leetdoc"
	"github.com/fwojciec/leetdoc/bloom"
	"golang.org/x/sync/errgroup"
)

// Batch de-duplication sizing.
const (
	batchExpectedURLs       = 1000
	batchFalsePositiveRate  = 0.001
	defaultBatchConcurrency = 2
)

// Capturer turns submission pages into stored problems.
type Capturer struct {
	Fetcher     leetdoc.Fetcher
	Parser      leetdoc.Parser
	Extractor   leetdoc.Extractor
	Problems    leetdoc.ProblemService
	RateLimiter leetdoc.SiteLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Result holds the outcome of a batch capture.
type Result struct {
	Saved      int
	Duplicates int
	Failed     int
	Skipped    int
	Problems   []*leetdoc.Problem
}

// ProgressEvent reports progress during a batch capture.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Problem   *leetdoc.Problem
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressDuplicate
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting capture progress.
type ProgressFunc func(event ProgressEvent)

// captureResult holds the outcome of extracting a single URL.
type captureResult struct {
	position   int
	url        string
	submission *leetdoc.Submission
	err        error
}

// Capture fetches a submission page, extracts it, and stores it.
// Returns ECONFLICT if the submission or identical code is already stored.
func (c *Capturer) Capture(ctx context.Context, rawURL string) (*leetdoc.Problem, error) {
	sub, err := c.Extract(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return c.Save(ctx, sub)
}

// Extract fetches a submission page and runs extraction on it. Fetch
// failures and pages that have not finished rendering are retried with
// backoff, and the rate limiter holds the whole site for the same delay.
func (c *Capturer) Extract(ctx context.Context, rawURL string) (*leetdoc.Submission, error) {
	delays := c.retryDelays()
	attempt := 0

	return Retry(ctx, delays, IsRetryable, c.Logger, func(ctx context.Context) (*leetdoc.Submission, error) {
		sub, err := c.extractOnce(ctx, rawURL)
		if err != nil && c.RateLimiter != nil && attempt < len(delays) && IsRetryable(err) {
			c.RateLimiter.Backoff(rawURL, delays[attempt])
		}
		attempt++
		return sub, err
	})
}

func (c *Capturer) extractOnce(ctx context.Context, rawURL string) (*leetdoc.Submission, error) {
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, rawURL); err != nil {
			return nil, err
		}
	}

	html, err := c.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	return c.ExtractHTML(rawURL, html)
}

// ExtractHTML parses already-rendered HTML and extracts the submission.
// location is the page URL or path the HTML was rendered from.
func (c *Capturer) ExtractHTML(location, html string) (*leetdoc.Submission, error) {
	root, err := c.Parser.Parse(html)
	if err != nil {
		return nil, err
	}
	return c.Extractor.Extract(&leetdoc.Page{URL: location, Root: root})
}

// Save stores a submission as a new problem at the end of the set.
// Returns ECONFLICT if the same submission link or identical code is
// already stored.
func (c *Capturer) Save(ctx context.Context, sub *leetdoc.Submission) (*leetdoc.Problem, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	link := sub.SubmissionLink
	existing, err := c.Problems.FindProblems(ctx, leetdoc.ProblemFilter{SubmissionLink: &link, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, leetdoc.Errorf(leetdoc.ECONFLICT, "submission already captured as %q", existing[0].Name)
	}

	hash := HashCode(sub.Code)
	existing, err = c.Problems.FindProblems(ctx, leetdoc.ProblemFilter{CodeHash: &hash, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, leetdoc.Errorf(leetdoc.ECONFLICT, "identical code already captured as %q", existing[0].Name)
	}

	problem := leetdoc.NewProblem(sub)
	if err := c.Problems.CreateProblem(ctx, problem); err != nil {
		return nil, err
	}
	return problem, nil
}

// CaptureAll captures a batch of URLs. Pages are fetched and extracted
// concurrently; problems are stored in the order the URLs were given.
// Repeated URLs are skipped. Per-URL failures are counted and reported
// through progress rather than returned.
func (c *Capturer) CaptureAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	var result Result

	unique := dedupe(urls)
	result.Skipped = len(urls) - len(unique)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	total := len(unique)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan captureResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range unique {
			g.Go(func() error {
				sub, err := c.Extract(gctx, u)
				resultCh <- captureResult{position: i, url: u, submission: sub, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]captureResult, total)
	for r := range resultCh {
		results[r.position] = r
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, r := range results {
		event := ProgressEvent{Total: total, URL: r.url}

		switch {
		case r.err != nil:
			result.Failed++
			event.Type, event.Error = ProgressFailed, r.err
		default:
			problem, err := c.Save(ctx, r.submission)
			switch {
			case leetdoc.ErrorCode(err) == leetdoc.ECONFLICT:
				result.Duplicates++
				event.Type, event.Error = ProgressDuplicate, err
			case err != nil:
				result.Failed++
				event.Type, event.Error = ProgressFailed, err
			default:
				result.Saved++
				result.Problems = append(result.Problems, problem)
				event.Type, event.Problem = ProgressCompleted, problem
			}
		}

		event.Completed = i + 1
		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

func (c *Capturer) retryDelays() []time.Duration {
	if c.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return c.RetryDelays
}

// dedupe drops repeated URLs, ignoring fragments and a trailing slash.
// A bloom hit is confirmed against the exact set so a false positive never
// drops a distinct submission.
func dedupe(urls []string) []string {
	seen := bloom.NewFilter(max(uint(len(urls)), batchExpectedURLs), batchFalsePositiveRate)
	exact := make(map[string]struct{}, len(urls))

	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		key := canonicalURL(u)
		if seen.Seen(key) {
			if _, ok := exact[key]; ok {
				continue
			}
		}
		exact[key] = struct{}{}
		unique = append(unique, u)
	}
	return unique
}

func canonicalURL(u string) string {
	if idx := strings.Index(u, "#"); idx != -1 {
		u = u[:idx]
	}
	return strings.TrimSuffix(strings.TrimSpace(u), "/")
}
