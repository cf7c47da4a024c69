package crawl_test

import (
	"testing"

	"github.com/fwojciec/newspulse"
	"github.com/fwojciec/newspulse/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_Add(t *testing.T) {
	t.Parallel()

	t.Run("drops article whose content is the default", func(t *testing.T) {
		t.Parallel()

		d := newspulse.UnknownDefaults()
		g := crawl.NewAggregator(d, nil)

		kept := g.Add(newspulse.NewArticle("https://example.com/a", d))

		assert.False(t, kept)
		assert.Equal(t, 0, g.Table().Len())
		assert.Equal(t, 1, g.Dropped())
	})

	t.Run("drops article with blank content", func(t *testing.T) {
		t.Parallel()

		g := crawl.NewAggregator(newspulse.UnknownDefaults(), nil)

		assert.False(t, g.Add(&newspulse.Article{URL: "u", Content: "   "}))
		assert.False(t, g.Add(nil))
		assert.Equal(t, 2, g.Dropped())
	})

	t.Run("keeps article with any other content", func(t *testing.T) {
		t.Parallel()

		d := newspulse.UnknownDefaults()
		g := crawl.NewAggregator(d, nil)
		a := newspulse.NewArticle("https://example.com/a", d)
		a.Content = "x"

		assert.True(t, g.Add(a))
		require.Equal(t, 1, g.Table().Len())
		assert.Equal(t, "https://example.com/a", g.Table().Rows()[0].URL)
	})

	t.Run("stored rows are not affected by later changes", func(t *testing.T) {
		t.Parallel()

		g := crawl.NewAggregator(newspulse.UnknownDefaults(), nil)
		a := &newspulse.Article{URL: "u", Content: "body"}
		g.Add(a)
		a.Title = "changed"

		assert.Empty(t, g.Table().Rows()[0].Title)
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		g := crawl.NewAggregator(newspulse.PlaceholderDefaults(), nil)
		g.Add(&newspulse.Article{URL: "b", Content: "1"})
		g.Add(&newspulse.Article{URL: "a", Content: "2"})

		rows := g.Table().Rows()
		assert.Equal(t, "b", rows[0].URL)
		assert.Equal(t, "a", rows[1].URL)
	})

	t.Run("custom keep check retains summary-only articles", func(t *testing.T) {
		t.Parallel()

		d := newspulse.PlaceholderDefaults()
		g := crawl.NewAggregator(d, nil, crawl.WithKeep((*newspulse.Article).HasText))
		a := newspulse.NewArticle("https://example.com/a", d)
		a.Summary = "Meta description only."

		assert.True(t, g.Add(a))
		assert.False(t, g.Add(newspulse.NewArticle("https://example.com/b", d)))
		assert.Equal(t, 1, g.Table().Len())
		assert.Equal(t, 1, g.Dropped())
	})
}
