// Package rod implements newspulse.Renderer with headless Chrome driven by
// go-rod, using stealth pages so index sites see a regular browser.
package rod

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/newspulse"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// DefaultReadyTimeout bounds the wait for the readiness signal.
const DefaultReadyTimeout = 15 * time.Second

// DefaultReadySelector is the element whose presence means the initial
// content has rendered.
const DefaultReadySelector = "a"

// DefaultUserAgent is a desktop Chrome identity string.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// Ensure Renderer implements newspulse.Renderer at compile time.
var _ newspulse.Renderer = (*Renderer)(nil)

// Renderer launches a fresh headless browser for every session it opens.
// Sessions never share a browser process, so tearing one down cannot
// affect another.
type Renderer struct {
	readyTimeout  time.Duration
	readySelector string
	userAgent     string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithReadyTimeout sets how long Open waits for the readiness signal.
// Defaults to DefaultReadyTimeout (15s).
func WithReadyTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.readyTimeout = d
	}
}

// WithReadySelector overrides the CSS selector used as readiness signal.
func WithReadySelector(selector string) Option {
	return func(r *Renderer) {
		r.readySelector = selector
	}
}

// WithUserAgent sets the browser identity string.
func WithUserAgent(ua string) Option {
	return func(r *Renderer) {
		r.userAgent = ua
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		readyTimeout:  DefaultReadyTimeout,
		readySelector: DefaultReadySelector,
		userAgent:     DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open launches a browser, navigates to url and waits for the readiness signal.
func (r *Renderer) Open(ctx context.Context, url string) (newspulse.RenderSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := launch()
	if err != nil {
		return nil, err
	}

	if err := s.open(ctx, url, r); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Ensure Session implements newspulse.RenderSession at compile time.
var _ newspulse.RenderSession = (*Session)(nil)

// Session is one browser process with a single stealth page.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page

	closeOnce sync.Once
	closeErr  error
}

// launch starts a new browser instance with stability flags.
func launch() (*Session, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("no-sandbox").
		Set("disable-blink-features", "AutomationControlled").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Session{browser: browser, launcher: l}, nil
}

func (s *Session) open(ctx context.Context, url string, r *Renderer) error {
	page, err := stealth.Page(s.browser)
	if err != nil {
		return fmt.Errorf("creating stealth page: %w", err)
	}
	s.page = page

	if r.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: r.userAgent}); err != nil {
			return fmt.Errorf("setting user agent: %w", err)
		}
	}

	if err := page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}

	if _, err := page.Context(ctx).Timeout(r.readyTimeout).Element(r.readySelector); err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return newspulse.Errorf(newspulse.EUNAVAILABLE,
				"no %q element on %s within %s", r.readySelector, url, r.readyTimeout)
		}
		return fmt.Errorf("waiting for %s: %w", url, err)
	}
	return nil
}

// ScrollToBottom scrolls the window to the current end of the document.
func (s *Session) ScrollToBottom(ctx context.Context) error {
	_, err := s.page.Context(ctx).Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	return err
}

// Height returns document.body.scrollHeight.
func (s *Session) Height(ctx context.Context) (int, error) {
	res, err := s.page.Context(ctx).Eval(`() => document.body.scrollHeight`)
	if err != nil {
		return 0, err
	}
	return res.Value.Int(), nil
}

// HTML returns the serialized DOM of the page.
func (s *Session) HTML(ctx context.Context) (string, error) {
	return s.page.Context(ctx).HTML()
}

// Close shuts the browser down and kills the launched process.
// Close is safe to call multiple times.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.browser != nil {
			s.closeErr = s.browser.Close()
		}
		if s.launcher != nil {
			s.launcher.Kill()
		}
	})
	return s.closeErr
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) LauncherPID() int {
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}
