package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newspulse"
)

var _ newspulse.PageLoader = (*LoggingPageLoader)(nil)

// LoggingPageLoader wraps a PageLoader with logging.
type LoggingPageLoader struct {
	next   newspulse.PageLoader
	logger *slog.Logger
}

// NewLoggingPageLoader creates a new LoggingPageLoader.
func NewLoggingPageLoader(next newspulse.PageLoader, logger *slog.Logger) *LoggingPageLoader {
	return &LoggingPageLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingPageLoader) Load(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		logOp(ctx, l.logger, "load index", begin, err, "url", url, "bytes", len(html))
	}(time.Now())
	return l.next.Load(ctx, url)
}
