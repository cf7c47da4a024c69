// Package gemini implements the AI collaborators of newspulse (summarizer,
// people tagger and structured article extractor) on Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/newspulse"
	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash"

// generate sends a single-turn prompt and returns the trimmed response text.
func generate(ctx context.Context, client *genai.Client, model, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if client == nil {
		return "", newspulse.Errorf(newspulse.EUNAVAILABLE, "gemini client not configured")
	}
	if model == "" {
		model = DefaultModel
	}

	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", newspulse.Errorf(newspulse.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// systemInstruction wraps text as a system instruction.
func systemInstruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// stripFences removes a Markdown code fence a model may wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
