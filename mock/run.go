package mock

import (
	"context"

	"github.com/fwojciec/newspulse"
)

var _ newspulse.RunService = (*RunService)(nil)

// RunService is a mock implementation of newspulse.RunService.
type RunService struct {
	FindRunsFn     func(ctx context.Context, filter newspulse.RunFilter) ([]*newspulse.Run, error)
	FindRunByIDFn  func(ctx context.Context, id string) (*newspulse.Run, error)
	FindArticlesFn func(ctx context.Context, filter newspulse.ArticleFilter) ([]*newspulse.StoredArticle, error)
}

func (s *RunService) FindRuns(ctx context.Context, filter newspulse.RunFilter) ([]*newspulse.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*newspulse.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindArticles(ctx context.Context, filter newspulse.ArticleFilter) ([]*newspulse.StoredArticle, error) {
	return s.FindArticlesFn(ctx, filter)
}
