package goquery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newspulse"
)

var _ newspulse.SearchService = (*SearchService)(nil)

// SearchEngine describes how to query a search engine and where its result
// markup hides the destination URLs. Result markup is undocumented and
// changes without notice, so every part of it is configuration.
type SearchEngine struct {
	Name string

	// QueryURL is a format string with a single %s for the escaped query.
	QueryURL string

	// LinkSelector selects result anchors.
	LinkSelector string

	// RedirectMarker is the substring of a result href that precedes the
	// wrapped destination, e.g. "url?q=".
	RedirectMarker string
}

// GoogleEngine scrapes Google's basic HTML results, whose links look like
// "/url?q=<destination>&sa=...".
func GoogleEngine() SearchEngine {
	return SearchEngine{
		Name:           "google",
		QueryURL:       "https://www.google.com/search?q=%s",
		LinkSelector:   "a[href]",
		RedirectMarker: "url?q=",
	}
}

// DuckDuckGoEngine scrapes DuckDuckGo's HTML endpoint, whose links look like
// "//duckduckgo.com/l/?uddg=<destination>&rut=...".
func DuckDuckGoEngine() SearchEngine {
	return SearchEngine{
		Name:           "duckduckgo",
		QueryURL:       "https://html.duckduckgo.com/html/?q=%s",
		LinkSelector:   "a.result__a[href]",
		RedirectMarker: "uddg=",
	}
}

// SearchService discovers article URLs through a search engine result page
// fetched with a plain request.
type SearchService struct {
	fetcher newspulse.Fetcher
	engine  SearchEngine
}

// NewSearchService creates a SearchService querying engine through fetcher.
func NewSearchService(fetcher newspulse.Fetcher, engine SearchEngine) *SearchService {
	return &SearchService{fetcher: fetcher, engine: engine}
}

// Query returns the domain-scoped query string for topic on site.
func Query(topic, site string) string {
	return fmt.Sprintf("%s site:%s", strings.TrimSpace(topic), strings.TrimSpace(site))
}

// Search fetches the result page for topic on site and returns the
// validated destination URLs in result order.
func (s *SearchService) Search(ctx context.Context, topic, site string) ([]string, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, newspulse.Errorf(newspulse.EINVALID, "search topic required")
	}
	if strings.TrimSpace(site) == "" {
		return nil, newspulse.Errorf(newspulse.EINVALID, "target site required")
	}

	searchURL := fmt.Sprintf(s.engine.QueryURL, url.QueryEscape(Query(topic, site)))
	html, err := s.fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("%s search for %s: %w", s.engine.Name, site, err)
	}

	return ExtractResultURLs(html, s.engine, site)
}

// ExtractResultURLs unwraps every redirect-wrapped result link in html and
// keeps the ones that point at site. Links that cannot be unwrapped or do
// not validate are dropped without error.
func ExtractResultURLs(html string, engine SearchEngine, site string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newspulse.Errorf(newspulse.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := newspulse.NewURLSet()
	var urls []string
	doc.Find(engine.LinkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		dest, ok := Unwrap(href, engine.RedirectMarker)
		if !ok || !ValidateURL(dest, site) {
			return
		}
		if seen.Add(dest) {
			urls = append(urls, dest)
		}
	})
	return urls, nil
}

// Unwrap extracts and percent-decodes the destination that follows marker
// in href. A literal "+" is kept as is.
func Unwrap(href, marker string) (string, bool) {
	if marker == "" {
		return "", false
	}
	i := strings.Index(href, marker)
	if i < 0 {
		return "", false
	}
	raw := href[i+len(marker):]
	if j := strings.Index(raw, "&"); j >= 0 {
		raw = raw[:j]
	}
	dest, err := url.PathUnescape(raw)
	if err != nil || dest == "" {
		return "", false
	}
	return dest, true
}

// ValidateURL reports whether raw is an http(s) URL whose host contains site.
func ValidateURL(raw, site string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return site != "" && strings.Contains(u.Host, site)
}
