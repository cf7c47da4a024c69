package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/newspulse"
	"google.golang.org/genai"
)

var _ newspulse.StructuredExtractor = (*StructuredExtractor)(nil)

// DefaultTokenBudget caps the article text sent with one extraction prompt.
const DefaultTokenBudget = 8000

// articleJSON is the response schema of the extraction prompt.
type articleJSON struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	PublicationDate string `json:"publication_date"`
	Author          string `json:"author"`
	Summary         string `json:"summary"`
}

// StructuredExtractor asks Gemini to map an article page onto the fixed
// article schema.
type StructuredExtractor struct {
	client    *genai.Client
	model     string
	converter newspulse.Converter
	counter   newspulse.TokenCounter
	budget    int
}

// ExtractorOption configures a StructuredExtractor.
type ExtractorOption func(*StructuredExtractor)

// WithTokenCounter trims page text to budget tokens as counted by counter.
func WithTokenCounter(counter newspulse.TokenCounter, budget int) ExtractorOption {
	return func(e *StructuredExtractor) {
		e.counter = counter
		e.budget = budget
	}
}

// NewStructuredExtractor creates an extractor that sends page HTML to the
// model as Markdown produced by converter.
func NewStructuredExtractor(client *genai.Client, model string, converter newspulse.Converter, opts ...ExtractorOption) *StructuredExtractor {
	e := &StructuredExtractor{
		client:    client,
		model:     model,
		converter: converter,
		budget:    DefaultTokenBudget,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractArticle returns the schema fields the model found in html.
// The model's summary doubles as the record body.
func (e *StructuredExtractor) ExtractArticle(ctx context.Context, url, html string) (*newspulse.Article, error) {
	if strings.TrimSpace(html) == "" {
		return nil, nil
	}

	text, err := e.converter.Convert(html)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", url, err)
	}
	if e.counter != nil {
		text, err = FitTokens(ctx, e.counter, text, e.budget)
		if err != nil {
			return nil, fmt.Errorf("count tokens for %s: %w", url, err)
		}
	}

	out, err := generate(ctx, e.client, e.model, BuildExtractPrompt(url, text), BuildExtractConfig())
	if err != nil {
		return nil, err
	}
	return ParseArticleJSON(url, out)
}

// BuildExtractConfig returns a config that constrains output to the article
// schema.
func BuildExtractConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	str := &genai.Schema{Type: genai.TypeString}
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"You extract metadata from news and blog articles. " +
				"Use only information present in the page. " +
				"Leave a field empty when the page does not state it."),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":            str,
				"url":              str,
				"publication_date": str,
				"author":           str,
				"summary":          str,
			},
			Required: []string{"title", "url", "publication_date", "author", "summary"},
		},
	}
}

// BuildExtractPrompt builds the user prompt for one article page.
func BuildExtractPrompt(url, text string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<url>%s</url>\n", url)
	sb.WriteString("<page>\n")
	sb.WriteString(text)
	sb.WriteString("\n</page>\n\n")
	sb.WriteString("Extract the title, url, publication_date, author and a 2-4 sentence summary of this article.")
	return sb.String()
}

// ParseArticleJSON decodes the model response into an article for url.
// A response with no usable field yields a nil article.
func ParseArticleJSON(url, s string) (*newspulse.Article, error) {
	s = stripFences(s)
	if s == "" {
		return nil, nil
	}

	var raw articleJSON
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, newspulse.Errorf(newspulse.EINTERNAL, "invalid article response: %v", err)
	}

	a := &newspulse.Article{
		URL:         url,
		Title:       strings.TrimSpace(raw.Title),
		Author:      strings.TrimSpace(raw.Author),
		PublishedAt: strings.TrimSpace(raw.PublicationDate),
		Summary:     strings.TrimSpace(raw.Summary),
	}
	a.Content = a.Summary
	if a.IsZero() {
		return nil, nil
	}
	return a, nil
}
