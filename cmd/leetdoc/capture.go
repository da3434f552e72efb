package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/leetdoc"
	"github.com/fwojciec/leetdoc/capture"
)

const progressURLWidth = 60

// Run executes the capture command.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	if deps.Capturer == nil || deps.Capturer.Fetcher == nil {
		err := leetdoc.Errorf(leetdoc.EINTERNAL, "capture is not configured")
		printError(deps, err)
		return err
	}

	if c.Concurrency > 0 {
		deps.Capturer.Concurrency = c.Concurrency
	}

	progress := func(event capture.ProgressEvent) {
		url := capture.TruncateURL(event.URL, progressURLWidth)
		switch event.Type {
		case capture.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Capturing %d submissions\n", event.Total)
		case capture.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] saved %q (%s)\n",
				event.Completed, event.Total, event.Problem.Name, event.Problem.Language)
		case capture.ProgressDuplicate:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %s\n",
				event.Completed, event.Total, url, leetdoc.ErrorMessage(event.Error))
		case capture.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] fail %s: %s\n",
				event.Completed, event.Total, url, errorText(event.Error))
		}
	}

	result, err := deps.Capturer.CaptureAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d problems (%d duplicates, %d failed, %d repeated URLs)\n",
		result.Saved, result.Duplicates, result.Failed, result.Skipped)

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d submissions could not be captured", result.Failed, len(c.URLs)-result.Skipped)
	}
	return nil
}

// errorText returns the message of an application error, or the full text
// of any other error.
func errorText(err error) string {
	var e *leetdoc.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
