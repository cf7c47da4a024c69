package crawl_test

import (
	"context"
	stdcsv "encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/newspulse"
	"github.com/fwojciec/newspulse/crawl"
	"github.com/fwojciec/newspulse/csv"
	"github.com/fwojciec/newspulse/goquery"
	nphttp "github.com/fwojciec/newspulse/http"
	"github.com/fwojciec/newspulse/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completeArticle = `<html>
<head>
	<meta name="author" content="Jane Doe">
	<meta name="description" content="Complete description.">
</head>
<body>
	<h1>Complete article</h1>
	<time>March 3, 2025</time>
	<p>Jane Doe and John Roe wrote about growth.</p>
</body>
</html>`

const bareArticle = `<html><body>
	<p>An article body without any metadata.</p>
</body></html>`

// newFixtureServer serves an index page linking to one complete and one
// metadata-less article, plus a link outside the blog prefix.
func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/blog/complete", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(completeArticle)) //nolint:errcheck
	})
	mux.HandleFunc("/blog/bare", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(bareArticle)) //nolint:errcheck
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestEndToEnd_IndexCrawl(t *testing.T) {
	t.Parallel()

	srv := newFixtureServer(t)
	indexHTML := `<html><body>
<a href="/blog/complete">Complete</a>
<a href="/blog/bare#top">Bare</a>
<a href="` + srv.URL + `/blog/complete">Complete again</a>
<a href="/careers">Careers</a>
</body></html>`

	session := newScriptedSession(100, 200, 200)
	session.HTMLFn = func(context.Context) (string, error) { return indexHTML, nil }
	loader := crawl.NewPageLoader(rendererFor(session), crawl.WithSettleInterval(0))

	harvester, err := goquery.NewLinkHarvester(srv.URL)
	require.NoError(t, err)

	d := newspulse.UnknownDefaults()
	r := &crawl.Runner{
		Fetcher: nphttp.NewFetcher(),
		Pipeline: &crawl.Pipeline{
			Parser:   goquery.NewArticleParser(),
			Defaults: d,
		},
		Enricher: &crawl.Enricher{
			Tagger: &mock.PeopleTagger{
				ExtractPeopleFn: func(_ context.Context, text string) ([]string, error) {
					if text == "Jane Doe and John Roe wrote about growth." {
						return []string{"Jane Doe", "John Roe"}, nil
					}
					return nil, nil
				},
			},
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(_ context.Context, text string) (string, error) {
					return "Summary: " + text, nil
				},
			},
			Publisher: "mckinsey",
			Defaults:  d,
		},
	}

	res, err := r.CrawlIndex(context.Background(), loader, harvester, srv.URL+"/blog", srv.URL+"/blog/", crawl.NewAggregator(d, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, session.closed)

	require.Equal(t, 2, res.Table.Len())
	byURL := map[string]*newspulse.Article{}
	for _, a := range res.Table.Rows() {
		byURL[a.URL] = a
	}

	complete := byURL[srv.URL+"/blog/complete"]
	require.NotNil(t, complete)
	assert.Equal(t, "Complete article", complete.Title)
	assert.Equal(t, "Jane Doe", complete.Author)
	assert.Equal(t, "March 3, 2025", complete.PublishedAt)
	assert.Equal(t, "Summary: Jane Doe and John Roe wrote about growth.", complete.Summary)
	assert.Equal(t, []string{"Jane Doe", "John Roe"}, complete.Names)

	bare := byURL[srv.URL+"/blog/bare"]
	require.NotNil(t, bare)
	assert.Equal(t, "Unknown", bare.Title)
	assert.Equal(t, "Unknown", bare.Author)
	assert.Equal(t, "Unknown", bare.PublishedAt)
	assert.Equal(t, "Summary: An article body without any metadata.", bare.Summary)
	assert.Empty(t, bare.Names)

	out := filepath.Join(t.TempDir(), "scraped_articles_summary.csv")
	require.NoError(t, csv.NewWriter(out, csv.CrawlLayout(), d).WriteResults(context.Background(), res.Table))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	records, err := stdcsv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"url", "title", "author", "publication_date", "summary", "names"}, records[0])
}
