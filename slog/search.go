package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newspulse"
)

var _ newspulse.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
type LoggingSearchService struct {
	next   newspulse.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next newspulse.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Search(ctx context.Context, topic, site string) (urls []string, err error) {
	defer func(begin time.Time) {
		logOp(ctx, s.logger, "search", begin, err, "topic", topic, "site", site, "count", len(urls))
	}(time.Now())
	return s.next.Search(ctx, topic, site)
}
