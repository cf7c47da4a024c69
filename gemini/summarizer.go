package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/newspulse"
	"google.golang.org/genai"
)

var _ newspulse.Summarizer = (*Summarizer)(nil)

// SummaryInstruction is the fixed instruction prepended to article text.
const SummaryInstruction = "Summarize the following text in 2-4 sentences."

// Summarizer implements newspulse.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	return &Summarizer{client: client, model: model}
}

// Summarize returns a short summary of text.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newspulse.Errorf(newspulse.EINVALID, "text required")
	}

	summary, err := generate(ctx, s.client, s.model, text, BuildSummaryConfig())
	if err != nil {
		return "", err
	}
	if summary == "" {
		return "", newspulse.Errorf(newspulse.EINTERNAL, "gemini returned empty summary")
	}
	return summary, nil
}

// BuildSummaryConfig returns the generation settings for summaries. The
// article text is sent as the user turn.
func BuildSummaryConfig() *genai.GenerateContentConfig {
	temp := float32(0.5)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(SummaryInstruction),
		Temperature:       &temp,
		MaxOutputTokens:   150,
	}
}
