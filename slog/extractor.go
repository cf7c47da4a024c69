package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newspulse"
)

var _ newspulse.StructuredExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a StructuredExtractor with logging.
type LoggingExtractor struct {
	next   newspulse.StructuredExtractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. Name identifies the
// extractor backend in log records.
func NewLoggingExtractor(next newspulse.StructuredExtractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// ExtractArticle delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractArticle(ctx context.Context, url, html string) (a *newspulse.Article, err error) {
	defer func(begin time.Time) {
		logOp(ctx, e.logger, "structured extract", begin, err,
			"extractor", e.name, "url", url, "bytes", len(html), "found", a != nil)
	}(time.Now())
	return e.next.ExtractArticle(ctx, url, html)
}
