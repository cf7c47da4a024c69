package newspulse

import (
	"strings"
)

// Defaults holds the placeholder values an Article carries for any field
// that extraction could not fill.
type Defaults struct {
	Title       string
	Author      string
	PublishedAt string
	Content     string
	Summary     string

	// CitedPeople is displayed when no cited individuals were found.
	CitedPeople string

	// SummaryFailed replaces the summary when the summarizer errors.
	SummaryFailed string
}

// UnknownDefaults returns the defaults used by the index crawl.
func UnknownDefaults() Defaults {
	return Defaults{
		Title:         "Unknown",
		Author:        "Unknown",
		PublishedAt:   "Unknown",
		Content:       "Unknown",
		Summary:       "Unknown",
		CitedPeople:   "",
		SummaryFailed: "Summary unavailable",
	}
}

// PlaceholderDefaults returns the defaults used by search discovery.
func PlaceholderDefaults() Defaults {
	return Defaults{
		Title:         "No Title",
		Author:        "No Author",
		PublishedAt:   "No Date",
		Content:       "No Content",
		Summary:       "No Summary",
		CitedPeople:   "No cited individuals",
		SummaryFailed: "Summary unavailable",
	}
}

// CitedPerson is a person quoted in an article together with the
// organisation they were attributed to.
type CitedPerson struct {
	Name        string
	Affiliation string
}

// String formats the pair the way it is displayed in output.
func (p CitedPerson) String() string {
	return p.Name + " from " + p.Affiliation
}

// Article is the record extracted for a single article URL.
type Article struct {
	URL         string
	Title       string
	Author      string
	PublishedAt string
	Content     string
	Summary     string
	CitedPeople []CitedPerson

	// Names is a set of tagged person names in order of first occurrence.
	Names []string
}

// NewArticle returns an article for url with every field set to its default.
func NewArticle(url string, d Defaults) *Article {
	return &Article{
		URL:         url,
		Title:       d.Title,
		Author:      d.Author,
		PublishedAt: d.PublishedAt,
		Content:     d.Content,
		Summary:     d.Summary,
	}
}

// HasBody reports whether extraction produced usable body content.
func (a *Article) HasBody(d Defaults) bool {
	content := strings.TrimSpace(a.Content)
	return content != "" && content != d.Content
}

// HasText reports whether either the body or the summary differs from its
// default. Search results are judged this way since their output carries
// the summary rather than the body.
func (a *Article) HasText(d Defaults) bool {
	if a.HasBody(d) {
		return true
	}
	summary := strings.TrimSpace(a.Summary)
	return summary != "" && summary != d.Summary
}

// IsZero reports whether no text field carries a value.
func (a *Article) IsZero() bool {
	return a.Title == "" && a.Author == "" && a.PublishedAt == "" &&
		a.Content == "" && a.Summary == ""
}

// AddNames adds names to the set, skipping blanks and names already present.
func (a *Article) AddNames(names ...string) {
	seen := make(map[string]struct{}, len(a.Names))
	for _, n := range a.Names {
		seen[n] = struct{}{}
	}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		a.Names = append(a.Names, n)
	}
}

// NamesText joins the name set into a single delimited string.
func (a *Article) NamesText() string {
	return strings.Join(a.Names, ", ")
}

// CitedPeopleText joins the cited individuals for display, or returns the
// default when there are none.
func (a *Article) CitedPeopleText(d Defaults) string {
	if len(a.CitedPeople) == 0 {
		return d.CitedPeople
	}
	parts := make([]string, len(a.CitedPeople))
	for i, p := range a.CitedPeople {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

// Merge copies every non-empty field of other onto a.
func (a *Article) Merge(other *Article) {
	if other == nil {
		return
	}
	if other.Title != "" {
		a.Title = other.Title
	}
	if other.Author != "" {
		a.Author = other.Author
	}
	if other.PublishedAt != "" {
		a.PublishedAt = other.PublishedAt
	}
	if other.Content != "" {
		a.Content = other.Content
	}
	if other.Summary != "" {
		a.Summary = other.Summary
	}
	if len(other.CitedPeople) > 0 {
		a.CitedPeople = append([]CitedPerson(nil), other.CitedPeople...)
	}
	a.AddNames(other.Names...)
}

// Clone returns a deep copy of the article.
func (a *Article) Clone() *Article {
	c := *a
	c.CitedPeople = append([]CitedPerson(nil), a.CitedPeople...)
	c.Names = append([]string(nil), a.Names...)
	return &c
}
