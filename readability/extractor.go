// Package readability implements newspulse.StructuredExtractor on
// go-readability's article detection.
package readability

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/newspulse"
	"github.com/go-shiori/go-readability"
)

var _ newspulse.StructuredExtractor = (*StructuredExtractor)(nil)

// StructuredExtractor wraps go-readability to read article fields.
type StructuredExtractor struct{}

// NewStructuredExtractor creates a new StructuredExtractor.
func NewStructuredExtractor() *StructuredExtractor {
	return &StructuredExtractor{}
}

// ExtractArticle returns the title, byline, excerpt and text readability
// found in rawHTML. Readability does not report a publication date.
func (e *StructuredExtractor) ExtractArticle(ctx context.Context, pageURL, rawHTML string) (*newspulse.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawHTML) == "" {
		return nil, nil
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	a := &newspulse.Article{
		URL:     pageURL,
		Title:   strings.TrimSpace(article.Title),
		Author:  strings.TrimSpace(article.Byline),
		Summary: strings.TrimSpace(article.Excerpt),
		Content: strings.Join(strings.Fields(article.TextContent), " "),
	}
	if a.IsZero() {
		return nil, nil
	}
	return a, nil
}
