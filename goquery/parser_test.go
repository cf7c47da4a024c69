package goquery_test

import (
	"testing"

	"github.com/fwojciec/newspulse"
	"github.com/fwojciec/newspulse/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleParser_Parse(t *testing.T) {
	t.Parallel()

	d := newspulse.UnknownDefaults()

	t.Run("extracts every field from a complete article", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head>
	<meta name="author" content="Jane Writer">
	<meta name="description" content="A short description.">
</head>
<body>
	<h1> Growth in  2025 </h1>
	<time datetime="2025-01-02">January 2, 2025</time>
	<p>First paragraph.</p>
	<p>Second paragraph.</p>
</body>
</html>`

		a, err := goquery.NewArticleParser().Parse("https://example.com/a", html, d)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a", a.URL)
		assert.Equal(t, "Growth in 2025", a.Title)
		assert.Equal(t, "Jane Writer", a.Author)
		assert.Equal(t, "January 2, 2025", a.PublishedAt)
		assert.Equal(t, "A short description.", a.Summary)
		assert.Equal(t, "First paragraph. Second paragraph.", a.Content)
	})

	t.Run("keeps default title when there is no h1", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h2>Not a title</h2><p>Body.</p></body></html>`

		a, err := goquery.NewArticleParser().Parse("https://example.com/b", html, d)

		require.NoError(t, err)
		assert.Equal(t, "Unknown", a.Title)
		assert.Equal(t, "Unknown", a.Author)
		assert.Equal(t, "Unknown", a.PublishedAt)
		assert.Equal(t, "Unknown", a.Summary)
		assert.Equal(t, "Body.", a.Content)
	})

	t.Run("uses placeholder defaults on the search path", func(t *testing.T) {
		t.Parallel()

		a, err := goquery.NewArticleParser().Parse("https://example.com/c", `<html><body></body></html>`, newspulse.PlaceholderDefaults())

		require.NoError(t, err)
		assert.Equal(t, "No Title", a.Title)
		assert.Equal(t, "No Author", a.Author)
		assert.Equal(t, "No Date", a.PublishedAt)
		assert.Equal(t, "No Content", a.Content)
	})

	t.Run("prefers author meta over byline elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="author" content="Meta Author"></head>
<body><span class="byline">Span Author</span></body></html>`

		a, err := goquery.NewArticleParser().Parse("u", html, d)

		require.NoError(t, err)
		assert.Equal(t, "Meta Author", a.Author)
	})

	t.Run("searches span before div before anchor", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a class="author-link">Anchor Author</a>
<div class="article-author">Div Author</div>
<span class="Byline">Span Author</span>
</body></html>`

		a, err := goquery.NewArticleParser().Parse("u", html, d)

		require.NoError(t, err)
		assert.Equal(t, "Span Author", a.Author)
	})

	t.Run("falls back to datetime attribute", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><time datetime="2024-05-06"></time></body></html>`

		a, err := goquery.NewArticleParser().Parse("u", html, d)

		require.NoError(t, err)
		assert.Equal(t, "2024-05-06", a.PublishedAt)
	})

	t.Run("finds cited people in visible text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<script>var x = "Hidden Person from Nowhere";</script>
<p>Maria Lopez from Acme Labs</p>
</body></html>`

		a, err := goquery.NewArticleParser().Parse("u", html, d)

		require.NoError(t, err)
		require.Len(t, a.CitedPeople, 1)
		assert.Equal(t, "Maria Lopez", a.CitedPeople[0].Name)
		assert.Equal(t, "Acme Labs", a.CitedPeople[0].Affiliation)
	})

	t.Run("returns error for empty HTML", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewArticleParser().Parse("u", "   ", d)

		require.Error(t, err)
		assert.Equal(t, newspulse.EINVALID, newspulse.ErrorCode(err))
	})
}

func TestFindCitedPeople(t *testing.T) {
	t.Parallel()

	t.Run("matches from, at and comma forms", func(t *testing.T) {
		t.Parallel()

		people := goquery.FindCitedPeople("said John Smith at Globex. Also Ann Lee , Initech.")

		require.Len(t, people, 2)
		assert.Equal(t, newspulse.CitedPerson{Name: "John Smith", Affiliation: "Globex"}, people[0])
		assert.Equal(t, newspulse.CitedPerson{Name: "Ann Lee", Affiliation: "Initech"}, people[1])
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, goquery.FindCitedPeople("no names here"))
	})
}
