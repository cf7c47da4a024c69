package newspulse

import "context"

// TokenCounter counts tokens in text for a specific model. It is used to
// keep article text inside a model's prompt budget.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
