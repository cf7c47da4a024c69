package trafilatura_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/newspulse/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Retailers rethink supply chains</title>
<meta property="og:title" content="Retailers rethink supply chains">
<meta name="author" content="Jane Doe">
<meta name="description" content="Why retailers are moving suppliers closer to home.">
<meta property="article:published_time" content="2025-03-03T09:00:00Z">
</head>
<body>
<nav><a href="/">Home</a><a href="/insights">Insights</a></nav>
<article>
<h1>Retailers rethink supply chains</h1>
<p>Retailers are moving suppliers closer to home after years of disruption in global shipping lanes and rising freight costs.</p>
<p>Executives say resilience now matters more than the lowest unit cost, and they are willing to pay for shorter and more predictable lead times.</p>
<p>The shift is most visible in apparel and consumer electronics, where nearshoring has grown fastest over the past two years.</p>
</article>
<footer>Copyright 2025</footer>
</body>
</html>`

func TestStructuredExtractor_ExtractArticle(t *testing.T) {
	t.Parallel()

	t.Run("extracts metadata and body", func(t *testing.T) {
		t.Parallel()

		a, err := trafilatura.NewStructuredExtractor().ExtractArticle(context.Background(), "https://example.com/supply", articleHTML)

		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, "https://example.com/supply", a.URL)
		assert.Contains(t, a.Title, "Retailers rethink supply chains")
		assert.Equal(t, "Jane Doe", a.Author)
		assert.Equal(t, "Why retailers are moving suppliers closer to home.", a.Summary)
		assert.Contains(t, a.Content, "nearshoring")
		assert.NotContains(t, a.Content, "Copyright 2025")
	})

	t.Run("body text is a single line", func(t *testing.T) {
		t.Parallel()

		a, err := trafilatura.NewStructuredExtractor().ExtractArticle(context.Background(), "https://example.com/supply", articleHTML)

		require.NoError(t, err)
		require.NotNil(t, a)
		assert.False(t, strings.Contains(a.Content, "\n"))
	})

	t.Run("empty HTML yields nothing", func(t *testing.T) {
		t.Parallel()

		a, err := trafilatura.NewStructuredExtractor().ExtractArticle(context.Background(), "https://example.com", " ")

		require.NoError(t, err)
		assert.Nil(t, a)
	})

	t.Run("honors canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := trafilatura.NewStructuredExtractor().ExtractArticle(ctx, "https://example.com", articleHTML)

		require.ErrorIs(t, err, context.Canceled)
	})
}
