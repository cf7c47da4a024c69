package crawl

import (
	"log/slog"

	"github.com/fwojciec/newspulse"
)

// Aggregator keeps the articles worth reporting. It is not safe for
// concurrent use; Runner feeds it from a single goroutine.
type Aggregator struct {
	defaults newspulse.Defaults
	keep     KeepFunc
	table    newspulse.ResultTable
	dropped  int
	logger   *slog.Logger
}

// KeepFunc decides whether an article is worth reporting.
type KeepFunc func(a *newspulse.Article, d newspulse.Defaults) bool

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithKeep replaces the retention check. The default keeps articles whose
// body differs from the default.
func WithKeep(fn KeepFunc) AggregatorOption {
	return func(g *Aggregator) {
		g.keep = fn
	}
}

// NewAggregator creates an Aggregator that judges articles against d.
func NewAggregator(d newspulse.Defaults, logger *slog.Logger, opts ...AggregatorOption) *Aggregator {
	g := &Aggregator{
		defaults: d,
		keep:     (*newspulse.Article).HasBody,
		logger:   orDiscard(logger),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Add appends a when it passes the retention check and reports whether it
// was kept.
func (g *Aggregator) Add(a *newspulse.Article) bool {
	if a == nil || !g.keep(a, g.defaults) {
		g.dropped++
		if a != nil {
			g.logger.Info("dropping article without content", "url", a.URL)
		}
		return false
	}
	g.table.Append(a)
	return true
}

// Table returns the retained articles in the order they were added.
func (g *Aggregator) Table() *newspulse.ResultTable {
	return &g.table
}

// Dropped returns the number of rejected articles.
func (g *Aggregator) Dropped() int {
	return g.dropped
}
