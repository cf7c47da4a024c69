package newspulse

import "context"

// PeopleTagger finds the names of people mentioned in text.
type PeopleTagger interface {
	ExtractPeople(ctx context.Context, text string) ([]string, error)
}

// Summarizer produces a short abstractive summary of article text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
