package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/newspulse"
	"google.golang.org/genai"
)

var _ newspulse.PeopleTagger = (*PeopleTagger)(nil)

// PeopleTagger implements newspulse.PeopleTagger by asking Gemini for the
// person entities in a text.
type PeopleTagger struct {
	client *genai.Client
	model  string
}

// NewPeopleTagger creates a new PeopleTagger.
func NewPeopleTagger(client *genai.Client, model string) *PeopleTagger {
	return &PeopleTagger{client: client, model: model}
}

// ExtractPeople returns the names of people mentioned in text, in order of
// first mention.
func (p *PeopleTagger) ExtractPeople(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	out, err := generate(ctx, p.client, p.model, text, BuildPeopleConfig())
	if err != nil {
		return nil, err
	}
	return ParsePeopleJSON(out)
}

// BuildPeopleConfig returns a config that constrains output to a JSON array
// of names.
func BuildPeopleConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"List the full names of every person mentioned in the text. " +
				"Return only people, not organisations or places. " +
				"Return an empty array if there are none."),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	}
}

// ParsePeopleJSON decodes a JSON array of names, dropping blanks.
func ParsePeopleJSON(s string) ([]string, error) {
	s = stripFences(s)
	if s == "" {
		return nil, nil
	}

	var raw []string
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, newspulse.Errorf(newspulse.EINTERNAL, "invalid people response: %v", err)
	}

	names := make([]string, 0, len(raw))
	for _, n := range raw {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names, nil
}
