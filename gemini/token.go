package gemini

import (
	"context"
	"unicode/utf8"

	"github.com/fwojciec/newspulse"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ newspulse.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using the Gemini tokenizer.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, "user"),
	}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}

// maxFitPasses bounds how many times FitTokens re-measures shortened text.
const maxFitPasses = 4

// FitTokens shortens text until counter reports at most budget tokens.
// Each pass cuts the text in proportion to its overshoot.
func FitTokens(ctx context.Context, counter newspulse.TokenCounter, text string, budget int) (string, error) {
	if budget <= 0 {
		return text, nil
	}
	for range maxFitPasses {
		n, err := counter.CountTokens(ctx, text)
		if err != nil {
			return "", err
		}
		if n <= budget {
			return text, nil
		}
		runes := []rune(text)
		keep := len(runes) * budget * 9 / (n * 10)
		text = string(runes[:keep])
	}
	// Give up measuring and return a conservative cut.
	if limit := budget * 3; utf8.RuneCountInString(text) > limit {
		text = string([]rune(text)[:limit])
	}
	return text, nil
}
