package mock

import (
	"context"

	"github.com/fwojciec/newspulse"
)

var (
	_ newspulse.PeopleTagger = (*PeopleTagger)(nil)
	_ newspulse.Summarizer   = (*Summarizer)(nil)
)

// PeopleTagger is a mock implementation of newspulse.PeopleTagger.
type PeopleTagger struct {
	ExtractPeopleFn func(ctx context.Context, text string) ([]string, error)
}

func (p *PeopleTagger) ExtractPeople(ctx context.Context, text string) ([]string, error) {
	return p.ExtractPeopleFn(ctx, text)
}

// Summarizer is a mock implementation of newspulse.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.SummarizeFn(ctx, text)
}
