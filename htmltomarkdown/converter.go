// Package htmltomarkdown converts article HTML to compact Markdown for
// language model prompts.
package htmltomarkdown

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/newspulse"
)

var _ newspulse.Converter = (*Converter)(nil)

// DefaultMaxRunes bounds the Markdown handed to a model. Article pages
// carry large navigation blocks that add cost without adding fields.
const DefaultMaxRunes = 30000

var blankLines = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv     *converter.Converter
	maxRunes int
}

// Option configures a Converter.
type Option func(*Converter)

// WithMaxRunes truncates output to n runes. Zero or less disables truncation.
func WithMaxRunes(n int) Option {
	return func(c *Converter) {
		c.maxRunes = n
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	c := &Converter{conv: conv, maxRunes: DefaultMaxRunes}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown, collapsing runs of blank
// lines and truncating to the configured length.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", newspulse.Errorf(newspulse.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	result = blankLines.ReplaceAllString(strings.TrimSpace(result), "\n\n")
	return Truncate(result, c.maxRunes), nil
}

// Truncate cuts s to at most n runes without splitting a character.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
