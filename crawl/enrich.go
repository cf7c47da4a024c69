package crawl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/newspulse"
)

// Enricher adds tagged people names and an abstractive summary to articles
// that have a usable body. A nil collaborator skips its step.
type Enricher struct {
	Tagger     newspulse.PeopleTagger
	Summarizer newspulse.Summarizer

	// Publisher is dropped from tagged names (e.g. "McKinsey").
	Publisher string

	Defaults newspulse.Defaults
	Logger   *slog.Logger
}

// Enrich updates a in place. Collaborator errors are logged and leave the
// record degraded rather than failing it.
func (e *Enricher) Enrich(ctx context.Context, a *newspulse.Article) {
	if !a.HasBody(e.Defaults) {
		return
	}
	logger := orDiscard(e.Logger)

	if e.Tagger != nil {
		names, err := e.Tagger.ExtractPeople(ctx, a.Content)
		if err != nil {
			logger.Warn("people tagging failed", "url", a.URL, "err", err)
		} else {
			a.AddNames(e.filterPublisher(names)...)
		}
	}

	if e.Summarizer != nil {
		summary, err := e.Summarizer.Summarize(ctx, a.Content)
		if err != nil || strings.TrimSpace(summary) == "" {
			logger.Warn("summarization failed", "url", a.URL, "err", err)
			a.Summary = e.Defaults.SummaryFailed
		} else {
			a.Summary = strings.TrimSpace(summary)
		}
	}
}

func (e *Enricher) filterPublisher(names []string) []string {
	if e.Publisher == "" {
		return names
	}
	out := names[:0:0]
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), e.Publisher) {
			continue
		}
		out = append(out, n)
	}
	return out
}
