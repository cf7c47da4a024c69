// Package goquery implements HTML parsing for newspulse using goquery:
// link harvesting from index pages, search result unwrapping, and the
// heuristic article parser.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newspulse"
)

var _ newspulse.LinkHarvester = (*LinkHarvester)(nil)

// LinkHarvester collects article links from a site's index page.
type LinkHarvester struct {
	origin *url.URL
}

// NewLinkHarvester returns a harvester that resolves relative links against
// origin (e.g. "https://www.mckinsey.com").
func NewLinkHarvester(origin string) (*LinkHarvester, error) {
	u, err := url.Parse(origin)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, newspulse.Errorf(newspulse.EINVALID, "invalid site origin %q", origin)
	}
	return &LinkHarvester{origin: u}, nil
}

// Harvest returns every unique absolute link in html containing prefix,
// sorted so the result does not depend on document order.
func (h *LinkHarvester) Harvest(html, prefix string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newspulse.Errorf(newspulse.EINVALID, "failed to parse HTML: %v", err)
	}

	urls := newspulse.NewURLSet()
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := h.resolve(href)
		if resolved == "" || !strings.Contains(resolved, prefix) {
			return
		}
		urls.Add(resolved)
	})

	return urls.Sorted(), nil
}

// resolve makes href absolute against the origin. Absolute hrefs are kept
// as they are apart from the fragment.
func (h *LinkHarvester) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if !ref.IsAbs() {
		ref = h.origin.ResolveReference(ref)
	}
	ref.Fragment = ""
	return ref.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
