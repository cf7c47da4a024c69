// Package csv serializes result tables as CSV files.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fwojciec/newspulse"
	"github.com/fwojciec/newspulse/fs"
)

var _ newspulse.ResultWriter = (*Writer)(nil)

// Column is one output column: a header and how to read it from an article.
type Column struct {
	Header string
	Value  func(a *newspulse.Article, d newspulse.Defaults) string
}

// Layout is the ordered column set of an output file.
type Layout []Column

// Headers returns the header row.
func (l Layout) Headers() []string {
	h := make([]string, len(l))
	for i, c := range l {
		h[i] = c.Header
	}
	return h
}

func url(a *newspulse.Article, _ newspulse.Defaults) string     { return a.URL }
func title(a *newspulse.Article, _ newspulse.Defaults) string   { return a.Title }
func author(a *newspulse.Article, _ newspulse.Defaults) string  { return a.Author }
func date(a *newspulse.Article, _ newspulse.Defaults) string    { return a.PublishedAt }
func summary(a *newspulse.Article, _ newspulse.Defaults) string { return a.Summary }
func names(a *newspulse.Article, _ newspulse.Defaults) string   { return a.NamesText() }
func cited(a *newspulse.Article, d newspulse.Defaults) string   { return a.CitedPeopleText(d) }

// CrawlLayout is the column set of the index crawl output.
func CrawlLayout() Layout {
	return Layout{
		{Header: "url", Value: url},
		{Header: "title", Value: title},
		{Header: "author", Value: author},
		{Header: "publication_date", Value: date},
		{Header: "summary", Value: summary},
		{Header: "names", Value: names},
	}
}

// SearchLayout is the column set of the search output.
func SearchLayout() Layout {
	return Layout{
		{Header: "url", Value: url},
		{Header: "title", Value: title},
		{Header: "summary", Value: summary},
		{Header: "publication_date", Value: date},
		{Header: "author", Value: author},
		{Header: "cited_individuals", Value: cited},
	}
}

// Writer writes a result table to a CSV file, replacing it atomically.
type Writer struct {
	path     string
	layout   Layout
	defaults newspulse.Defaults
}

// NewWriter creates a Writer for path. Defaults supply the text shown for
// empty list columns.
func NewWriter(path string, layout Layout, d newspulse.Defaults) *Writer {
	return &Writer{path: path, layout: layout, defaults: d}
}

// WriteResults writes the header and every row of table. The previous file
// at the path stays in place if writing fails.
func (w *Writer) WriteResults(ctx context.Context, table *newspulse.ResultTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := fs.Create(w.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.path, err)
	}
	if err := Encode(f, w.layout, w.defaults, table); err != nil {
		f.Abort() //nolint:errcheck
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	if err := f.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", w.path, err)
	}
	return nil
}

// Encode writes table to out using layout.
func Encode(out io.Writer, layout Layout, d newspulse.Defaults, table *newspulse.ResultTable) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(layout.Headers()); err != nil {
		return err
	}

	record := make([]string, len(layout))
	for _, a := range table.Rows() {
		for i, c := range layout {
			record[i] = c.Value(a, d)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
