package newspulse

import "context"

// Fetcher retrieves raw HTML for a single URL with a plain request.
type Fetcher interface {
	// Fetch returns the response body of url.
	// Non-2xx responses and transport failures are returned as errors.
	Fetch(ctx context.Context, url string) (html string, err error)
}
