package newspulse

import (
	"context"
	"time"
)

// Run is one stored extraction run.
type Run struct {
	ID           string
	Source       string
	ArticleCount int
	CreatedAt    time.Time
}

// StoredArticle is an article row together with its storage metadata.
type StoredArticle struct {
	ID          string
	RunID       string
	Position    int
	ContentHash string
	Article     *Article
}

// RunFilter selects stored runs. Zero values match everything.
type RunFilter struct {
	Source *string
	Limit  int
	Offset int
}

// ArticleFilter selects stored articles. Zero values match everything.
type ArticleFilter struct {
	RunID  *string
	URL    *string
	Limit  int
	Offset int
}

// RunService reads back stored runs and their articles.
type RunService interface {
	// FindRuns returns runs matching filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindRunByID returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindArticles returns articles matching filter ordered by run and position.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*StoredArticle, error)
}
