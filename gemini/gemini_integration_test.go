//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/newspulse/gemini"
	"github.com/fwojciec/newspulse/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newClient(t *testing.T, ctx context.Context) *genai.Client {
	t.Helper()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)
	return client
}

const articleHTML = `<html><body>
<h1>Retailers rethink supply chains</h1>
<p class="byline">By Jane Doe, March 3, 2025</p>
<p>Retailers are moving suppliers closer to home. "Resilience now beats cost," said Maria Lopez, chief operating officer at Acme Stores.</p>
</body></html>`

func TestSummarizer_Integration_ReturnsSummary(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := gemini.NewSummarizer(newClient(t, ctx), gemini.DefaultModel)

	summary, err := s.Summarize(ctx, "Retailers are moving suppliers closer to home to improve resilience.")

	require.NoError(t, err)
	assert.NotEmpty(t, summary)
}

func TestPeopleTagger_Integration_FindsPeople(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p := gemini.NewPeopleTagger(newClient(t, ctx), gemini.DefaultModel)

	names, err := p.ExtractPeople(ctx, "Maria Lopez met John Smith in Paris.")

	require.NoError(t, err)
	assert.Contains(t, names, "Maria Lopez")
	assert.Contains(t, names, "John Smith")
}

func TestStructuredExtractor_Integration_ExtractsTitle(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	e := gemini.NewStructuredExtractor(newClient(t, ctx), gemini.DefaultModel, htmltomarkdown.NewConverter())

	a, err := e.ExtractArticle(ctx, "https://example.com/supply", articleHTML)

	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Contains(t, a.Title, "supply chains")
	assert.NotEmpty(t, a.Summary)
}

func TestTokenCounter_Integration_FitsBudget(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter("gemini-2.0-flash")
	require.NoError(t, err)

	ctx := context.Background()
	text, err := gemini.FitTokens(ctx, tc, articleHTML+articleHTML+articleHTML, 20)
	require.NoError(t, err)

	n, err := tc.CountTokens(ctx, text)
	require.NoError(t, err)
	assert.LessOrEqual(t, n, 20)
}
