package newspulse

import "context"

// Renderer opens browser sessions that execute a page's scripts.
type Renderer interface {
	// Open launches an isolated session, navigates to url and waits until
	// the page shows its readiness signal (at least one hyperlink).
	// Returns EUNAVAILABLE if the signal does not appear in time.
	// The caller must Close the returned session.
	Open(ctx context.Context, url string) (RenderSession, error)
}

// RenderSession is a single rendered page owned by one discovery pass.
type RenderSession interface {
	// ScrollToBottom scrolls the viewport to the end of the document.
	ScrollToBottom(ctx context.Context) error

	// Height returns the current scrollable height of the document.
	Height(ctx context.Context) (int, error)

	// HTML returns the current serialized DOM.
	HTML(ctx context.Context) (string, error)

	// Close tears down the session and any browser process behind it.
	Close() error
}

// PageLoader materializes a scroll-to-load index page.
type PageLoader interface {
	// Load returns the HTML of url after all lazily-loaded content appeared.
	Load(ctx context.Context, url string) (string, error)
}
