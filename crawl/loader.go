package crawl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/newspulse"
)

var _ newspulse.PageLoader = (*PageLoader)(nil)

// Scroll loop defaults.
const (
	DefaultSettleInterval = 5 * time.Second
	DefaultMaxScrolls     = 50
)

// ScrollState is the state of the scroll-to-load loop.
type ScrollState int

// Scroll states. Loading is the only non-terminal state.
const (
	ScrollLoading ScrollState = iota
	ScrollStable
	ScrollExhausted
)

// String returns the state name used in logs.
func (s ScrollState) String() string {
	switch s {
	case ScrollLoading:
		return "loading"
	case ScrollStable:
		return "stable"
	case ScrollExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// PageLoader renders an index page and scrolls it until no more content
// loads.
type PageLoader struct {
	renderer       newspulse.Renderer
	settleInterval time.Duration
	maxScrolls     int
	logger         *slog.Logger
}

// LoaderOption configures a PageLoader.
type LoaderOption func(*PageLoader)

// WithSettleInterval sets how long to wait after each scroll for new
// content to load.
func WithSettleInterval(d time.Duration) LoaderOption {
	return func(l *PageLoader) {
		l.settleInterval = d
	}
}

// WithMaxScrolls bounds the number of scrolls. Values below one are
// ignored and leave DefaultMaxScrolls in place.
func WithMaxScrolls(n int) LoaderOption {
	return func(l *PageLoader) {
		if n >= 1 {
			l.maxScrolls = n
		}
	}
}

// WithLoaderLogger sets the logger.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *PageLoader) {
		l.logger = logger
	}
}

// NewPageLoader creates a PageLoader backed by renderer.
func NewPageLoader(renderer newspulse.Renderer, opts ...LoaderOption) *PageLoader {
	l := &PageLoader{
		renderer:       renderer,
		settleInterval: DefaultSettleInterval,
		maxScrolls:     DefaultMaxScrolls,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = orDiscard(l.logger)
	return l
}

// Load opens url in a fresh render session and returns its HTML once the
// page height stops growing. The session is closed on every path.
func (l *PageLoader) Load(ctx context.Context, url string) (string, error) {
	session, err := l.renderer.Open(ctx, url)
	if err != nil {
		return "", loadError(ctx, "open", url, err)
	}
	defer session.Close()

	html, state, err := ScrollUntilStable(ctx, session, l.settleInterval, l.maxScrolls)
	if err != nil {
		return "", loadError(ctx, "scroll", url, err)
	}
	if state == ScrollExhausted {
		l.logger.Warn("scroll limit reached, page may be incomplete",
			"url", url,
			"max_scrolls", l.maxScrolls,
		)
	}
	return html, nil
}

// loadError reports a failed discovery pass as EUNAVAILABLE unless the
// caller canceled it or the error already carries a code.
func loadError(ctx context.Context, op, url string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s %s: %w", op, url, ctx.Err())
	}
	var e *newspulse.Error
	if errors.As(err, &e) {
		return fmt.Errorf("%s %s: %w", op, url, err)
	}
	return newspulse.Errorf(newspulse.EUNAVAILABLE, "%s %s: %v", op, url, err)
}

// ScrollUntilStable scrolls session to the bottom until its height stops
// increasing or maxScrolls is reached, then returns the HTML at that point.
// The session is always scrolled at least once.
func ScrollUntilStable(ctx context.Context, session newspulse.RenderSession, settle time.Duration, maxScrolls int) (string, ScrollState, error) {
	maxScrolls = max(maxScrolls, 1)

	last, err := session.Height(ctx)
	if err != nil {
		return "", ScrollLoading, err
	}

	state := ScrollLoading
	for scrolls := 0; ; scrolls++ {
		if scrolls >= maxScrolls {
			state = ScrollExhausted
			break
		}
		if err := session.ScrollToBottom(ctx); err != nil {
			return "", state, err
		}
		if err := sleep(ctx, settle); err != nil {
			return "", state, err
		}
		h, err := session.Height(ctx)
		if err != nil {
			return "", state, err
		}
		if h <= last {
			state = ScrollStable
			break
		}
		last = h
	}

	html, err := session.HTML(ctx)
	if err != nil {
		return "", state, err
	}
	return html, state, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
