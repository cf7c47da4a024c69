package mock

import (
	"context"

	"github.com/fwojciec/newspulse"
)

var (
	_ newspulse.Renderer      = (*Renderer)(nil)
	_ newspulse.RenderSession = (*RenderSession)(nil)
	_ newspulse.PageLoader    = (*PageLoader)(nil)
)

// Renderer is a mock implementation of newspulse.Renderer.
type Renderer struct {
	OpenFn func(ctx context.Context, url string) (newspulse.RenderSession, error)
}

func (r *Renderer) Open(ctx context.Context, url string) (newspulse.RenderSession, error) {
	return r.OpenFn(ctx, url)
}

// RenderSession is a mock implementation of newspulse.RenderSession.
type RenderSession struct {
	ScrollToBottomFn func(ctx context.Context) error
	HeightFn         func(ctx context.Context) (int, error)
	HTMLFn           func(ctx context.Context) (string, error)
	CloseFn          func() error
}

func (s *RenderSession) ScrollToBottom(ctx context.Context) error {
	return s.ScrollToBottomFn(ctx)
}

func (s *RenderSession) Height(ctx context.Context) (int, error) {
	return s.HeightFn(ctx)
}

func (s *RenderSession) HTML(ctx context.Context) (string, error) {
	return s.HTMLFn(ctx)
}

func (s *RenderSession) Close() error {
	return s.CloseFn()
}

// PageLoader is a mock implementation of newspulse.PageLoader.
type PageLoader struct {
	LoadFn func(ctx context.Context, url string) (string, error)
}

func (l *PageLoader) Load(ctx context.Context, url string) (string, error) {
	return l.LoadFn(ctx, url)
}
