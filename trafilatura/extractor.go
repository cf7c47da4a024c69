// Package trafilatura implements newspulse.StructuredExtractor on
// go-trafilatura's metadata and main-content extraction.
package trafilatura

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/newspulse"
	"github.com/markusmobius/go-trafilatura"
)

var _ newspulse.StructuredExtractor = (*StructuredExtractor)(nil)

// dateLayout formats publication dates found in page metadata.
const dateLayout = "2006-01-02"

// StructuredExtractor wraps go-trafilatura to read article metadata and
// body text without a language model.
type StructuredExtractor struct{}

// NewStructuredExtractor creates a new StructuredExtractor.
func NewStructuredExtractor() *StructuredExtractor {
	return &StructuredExtractor{}
}

// ExtractArticle returns the metadata and main text trafilatura found.
// The meta description becomes the summary.
func (e *StructuredExtractor) ExtractArticle(ctx context.Context, pageURL, rawHTML string) (*newspulse.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawHTML) == "" {
		return nil, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	a := &newspulse.Article{
		URL:     pageURL,
		Title:   strings.TrimSpace(result.Metadata.Title),
		Author:  strings.TrimSpace(result.Metadata.Author),
		Summary: strings.TrimSpace(result.Metadata.Description),
		Content: strings.Join(strings.Fields(result.ContentText), " "),
	}
	if !result.Metadata.Date.IsZero() {
		a.PublishedAt = result.Metadata.Date.Format(dateLayout)
	}
	if a.IsZero() {
		return nil, nil
	}
	return a, nil
}
