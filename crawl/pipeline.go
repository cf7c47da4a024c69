package crawl

import (
	"context"
	"log/slog"

	"github.com/fwojciec/newspulse"
)

// Pipeline extracts an article through a chain of tiers: the structured
// extractor when configured, then the heuristic parser, then the all-default
// record. Extract always returns a record.
type Pipeline struct {
	Structured newspulse.StructuredExtractor
	Parser     newspulse.ArticleParser
	Defaults   newspulse.Defaults
	Logger     *slog.Logger
}

// Extract returns the article for url from its html.
func (p *Pipeline) Extract(ctx context.Context, url, html string) *newspulse.Article {
	logger := orDiscard(p.Logger)

	if p.Structured != nil {
		res := p.structured(ctx, url, html)
		switch res.Status {
		case newspulse.TierSuccess:
			return p.complete(url, html, res.Article)
		case newspulse.TierFailed:
			logger.Warn("structured extraction failed, using parser", "url", url, "err", res.Err)
		default:
			logger.Debug("structured extraction empty, using parser", "url", url)
		}
	}

	a, err := p.parse(url, html)
	if err == nil {
		return a
	}
	logger.Warn("parsing failed, using defaults", "url", url, "err", err)
	return newspulse.NewArticle(url, p.Defaults)
}

// structured runs the first tier and classifies its outcome.
func (p *Pipeline) structured(ctx context.Context, url, html string) newspulse.TierResult {
	a, err := p.Structured.ExtractArticle(ctx, url, html)
	if err != nil {
		return newspulse.TierError(err)
	}
	if a == nil || a.IsZero() {
		return newspulse.TierNone()
	}
	return newspulse.TierOK(a)
}

// complete lays the structured result over the defaults, then fills every
// field still at its default from the parser. Cited people always come from
// the parser since structured extractors do not report them.
func (p *Pipeline) complete(url, html string, found *newspulse.Article) *newspulse.Article {
	a := newspulse.NewArticle(url, p.Defaults)
	a.Merge(found)
	a.URL = url

	parsed, err := p.parse(url, html)
	if err != nil {
		return a
	}
	d := p.Defaults
	backfill(&a.Title, parsed.Title, d.Title)
	backfill(&a.Author, parsed.Author, d.Author)
	backfill(&a.PublishedAt, parsed.PublishedAt, d.PublishedAt)
	backfill(&a.Content, parsed.Content, d.Content)
	backfill(&a.Summary, parsed.Summary, d.Summary)
	if len(a.CitedPeople) == 0 {
		a.CitedPeople = parsed.CitedPeople
	}
	return a
}

// backfill sets *dst to src when *dst still holds the default and src does not.
func backfill(dst *string, src, def string) {
	if *dst == def && src != "" && src != def {
		*dst = src
	}
}

func (p *Pipeline) parse(url, html string) (*newspulse.Article, error) {
	if p.Parser == nil {
		return nil, newspulse.Errorf(newspulse.EINTERNAL, "no parser configured")
	}
	return p.Parser.Parse(url, html, p.Defaults)
}
