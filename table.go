package newspulse

import "context"

// ResultTable is the ordered collection of retained articles.
// Rows appear in the order they finished processing.
type ResultTable struct {
	rows []*Article
}

// Append adds a copy of the article so later changes by the caller cannot
// alter the stored row.
func (t *ResultTable) Append(a *Article) {
	t.rows = append(t.rows, a.Clone())
}

// Rows returns the stored articles. Callers must treat them as read-only.
func (t *ResultTable) Rows() []*Article {
	return t.rows
}

// Len returns the number of rows.
func (t *ResultTable) Len() int {
	return len(t.rows)
}

// ResultWriter serializes a finished result table.
type ResultWriter interface {
	WriteResults(ctx context.Context, table *ResultTable) error
}
