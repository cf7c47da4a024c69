package main

import (
	"fmt"

	"github.com/fwojciec/newspulse"
	"github.com/fwojciec/newspulse/crawl"
	"github.com/fwojciec/newspulse/csv"
	"github.com/fwojciec/newspulse/goquery"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	harvester, err := goquery.NewLinkHarvester(c.Origin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newspulse.ErrorMessage(err))
		return err
	}

	d := newspulse.UnknownDefaults()
	runner := &crawl.Runner{
		Fetcher: deps.Fetcher,
		Pipeline: &crawl.Pipeline{
			Parser:   goquery.NewArticleParser(),
			Defaults: d,
			Logger:   deps.Logger,
		},
		Enricher: &crawl.Enricher{
			Tagger:     deps.Tagger,
			Summarizer: deps.Summarizer,
			Publisher:  c.Publisher,
			Defaults:   d,
			Logger:     deps.Logger,
		},
		Concurrency: c.Concurrency,
		Logger:      deps.Logger,
		Progress:    progressPrinter(deps.Stdout),
	}

	res, err := runner.CrawlIndex(deps.Ctx, deps.Loader, harvester, c.IndexURL, c.Prefix, crawl.NewAggregator(d, deps.Logger))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newspulse.ErrorMessage(err))
		return err
	}

	return saveResults(deps, res, csv.NewWriter(c.Output, csv.CrawlLayout(), d), c.Output)
}
