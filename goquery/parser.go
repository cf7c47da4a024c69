package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newspulse"
	"golang.org/x/net/html"
)

// bylineClass matches class attributes that usually hold an author name.
var bylineClass = regexp.MustCompile(`(?i)author|byline`)

// citationPattern matches "First Last from Org", "First Last at Org" and
// "First Last , Org" in visible page text.
var citationPattern = regexp.MustCompile(`([A-Z][a-z]+\s[A-Z][a-z]+)\s(?:from|at|,)\s([\w\s]+)`)

// bylineTags are searched in order for an element with a byline class.
var bylineTags = []string{"span", "div", "a"}

// ArticleParser extracts article fields from raw HTML with fixed heuristics.
// Fields it cannot find keep their defaults.
type ArticleParser struct{}

// NewArticleParser creates a new ArticleParser.
func NewArticleParser() *ArticleParser {
	return &ArticleParser{}
}

// Parse builds an article for url from html. It returns an error only when
// html is empty or cannot be parsed at all.
func (p *ArticleParser) Parse(url, rawHTML string, d newspulse.Defaults) (*newspulse.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newspulse.Errorf(newspulse.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, newspulse.Errorf(newspulse.EINVALID, "failed to parse HTML: %v", err)
	}

	a := newspulse.NewArticle(url, d)

	if title := cleanText(doc.Find("h1").First().Text()); title != "" {
		a.Title = title
	}
	if author := findAuthor(doc); author != "" {
		a.Author = author
	}
	if date := findDate(doc); date != "" {
		a.PublishedAt = date
	}
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && strings.TrimSpace(desc) != "" {
		a.Summary = strings.TrimSpace(desc)
	}
	if content := paragraphText(doc); content != "" {
		a.Content = content
	}
	a.CitedPeople = FindCitedPeople(VisibleText(doc.Selection))

	return a, nil
}

// findAuthor tries the author meta tag, then byline-classed elements.
func findAuthor(doc *goquery.Document) string {
	if author, ok := doc.Find(`meta[name="author"]`).First().Attr("content"); ok {
		if author = strings.TrimSpace(author); author != "" {
			return author
		}
	}

	for _, tag := range bylineTags {
		var author string
		doc.Find(tag + "[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			class, _ := sel.Attr("class")
			if !bylineClass.MatchString(class) {
				return true
			}
			author = cleanText(sel.Text())
			return author == ""
		})
		if author != "" {
			return author
		}
	}
	return ""
}

// findDate reads the first time element, preferring its text and falling
// back to the datetime attribute.
func findDate(doc *goquery.Document) string {
	sel := doc.Find("time").First()
	if sel.Length() == 0 {
		return ""
	}
	if text := cleanText(sel.Text()); text != "" {
		return text
	}
	dt, _ := sel.Attr("datetime")
	return strings.TrimSpace(dt)
}

// paragraphText joins the text of every paragraph.
func paragraphText(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := cleanText(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// FindCitedPeople returns the (name, affiliation) pairs matched in text.
func FindCitedPeople(text string) []newspulse.CitedPerson {
	matches := citationPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	people := make([]newspulse.CitedPerson, 0, len(matches))
	for _, m := range matches {
		people = append(people, newspulse.CitedPerson{
			Name:        m[1],
			Affiliation: strings.TrimSpace(m[2]),
		})
	}
	return people
}

// VisibleText returns the text nodes under sel joined by single spaces,
// skipping script, style and noscript content.
func VisibleText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "template", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// cleanText collapses runs of whitespace.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
