// Package slog provides logging decorators for leetdoc services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/leetdoc"
)

// Ensure LoggingExtractor implements leetdoc.Extractor.
var _ leetdoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of every extraction.
type LoggingExtractor struct {
	next   leetdoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next leetdoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(page *leetdoc.Page) (sub *leetdoc.Submission, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", page.URL,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", leetdoc.ErrorCode(err), "err", err)
		} else {
			attrs = append(attrs, "name", sub.Name, "language", sub.Language, "length", len(sub.Code))
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(page)
}
