package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newspulse"
)

var (
	_ newspulse.Summarizer   = (*LoggingSummarizer)(nil)
	_ newspulse.PeopleTagger = (*LoggingPeopleTagger)(nil)
)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   newspulse.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next newspulse.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string) (summary string, err error) {
	defer func(begin time.Time) {
		logOp(ctx, s.logger, "summarize", begin, err, "input_bytes", len(text), "output_bytes", len(summary))
	}(time.Now())
	return s.next.Summarize(ctx, text)
}

// LoggingPeopleTagger wraps a PeopleTagger with logging.
type LoggingPeopleTagger struct {
	next   newspulse.PeopleTagger
	logger *slog.Logger
}

// NewLoggingPeopleTagger creates a new LoggingPeopleTagger.
func NewLoggingPeopleTagger(next newspulse.PeopleTagger, logger *slog.Logger) *LoggingPeopleTagger {
	return &LoggingPeopleTagger{next: next, logger: logger}
}

// ExtractPeople delegates to the wrapped tagger and logs the operation.
func (p *LoggingPeopleTagger) ExtractPeople(ctx context.Context, text string) (names []string, err error) {
	defer func(begin time.Time) {
		logOp(ctx, p.logger, "tag people", begin, err, "input_bytes", len(text), "count", len(names))
	}(time.Now())
	return p.next.ExtractPeople(ctx, text)
}
