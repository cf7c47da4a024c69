package mock

import (
	"context"

	"github.com/fwojciec/newspulse"
)

var (
	_ newspulse.StructuredExtractor = (*StructuredExtractor)(nil)
	_ newspulse.ArticleParser       = (*ArticleParser)(nil)
	_ newspulse.Converter           = (*Converter)(nil)
)

// StructuredExtractor is a mock implementation of newspulse.StructuredExtractor.
type StructuredExtractor struct {
	ExtractArticleFn func(ctx context.Context, url, html string) (*newspulse.Article, error)
}

func (e *StructuredExtractor) ExtractArticle(ctx context.Context, url, html string) (*newspulse.Article, error) {
	return e.ExtractArticleFn(ctx, url, html)
}

// ArticleParser is a mock implementation of newspulse.ArticleParser.
type ArticleParser struct {
	ParseFn func(url, html string, d newspulse.Defaults) (*newspulse.Article, error)
}

func (p *ArticleParser) Parse(url, html string, d newspulse.Defaults) (*newspulse.Article, error) {
	return p.ParseFn(url, html, d)
}

// Converter is a mock implementation of newspulse.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
