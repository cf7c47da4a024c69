package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newspulse"
)

var _ newspulse.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   newspulse.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next newspulse.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		logOp(ctx, f.logger, "fetch", begin, err, "url", url, "bytes", len(html))
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
