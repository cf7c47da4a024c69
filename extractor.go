package newspulse

import "context"

// StructuredExtractor is the primary extraction tier. Implementations map a
// page onto the fixed article schema (title, url, publication date, author,
// summary) using an AI model or a metadata extraction library.
type StructuredExtractor interface {
	// ExtractArticle returns the fields it recognized in html.
	// A nil article with a nil error means the page yielded nothing.
	ExtractArticle(ctx context.Context, url, html string) (*Article, error)
}

// TierStatus is the outcome of one extraction tier.
type TierStatus int

// Tier outcomes.
const (
	TierSuccess TierStatus = iota
	TierEmpty
	TierFailed
)

// String returns the status name used in logs.
func (s TierStatus) String() string {
	switch s {
	case TierSuccess:
		return "success"
	case TierEmpty:
		return "empty"
	case TierFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TierResult is what an extraction tier hands back to the pipeline.
type TierResult struct {
	Status  TierStatus
	Article *Article
	Err     error
}

// TierOK wraps a successfully extracted article.
func TierOK(a *Article) TierResult {
	return TierResult{Status: TierSuccess, Article: a}
}

// TierNone reports that the tier ran but found nothing.
func TierNone() TierResult {
	return TierResult{Status: TierEmpty}
}

// TierError reports that the tier failed with err.
func TierError(err error) TierResult {
	return TierResult{Status: TierFailed, Err: err}
}

// ArticleParser is the deterministic fallback tier. It reads article fields
// straight from HTML elements and leaves missing fields at their defaults.
type ArticleParser interface {
	// Parse returns an error only when html cannot be parsed at all.
	Parse(url, html string, d Defaults) (*Article, error)
}
