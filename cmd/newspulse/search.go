package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/newspulse"
	"github.com/fwojciec/newspulse/crawl"
	"github.com/fwojciec/newspulse/csv"
	"github.com/fwojciec/newspulse/goquery"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	topic := strings.TrimSpace(c.Topic)
	if topic == "" {
		topic = promptTopic(deps)
	}

	cfg := newspulse.SearchConfig{Topic: topic, TargetSites: c.Sites}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newspulse.ErrorMessage(err))
		return err
	}

	d := newspulse.PlaceholderDefaults()
	runner := &crawl.Runner{
		Fetcher: deps.Fetcher,
		Pipeline: &crawl.Pipeline{
			Structured: deps.Structured,
			Parser:     goquery.NewArticleParser(),
			Defaults:   d,
			Logger:     deps.Logger,
		},
		Concurrency: c.Concurrency,
		Logger:      deps.Logger,
		Progress:    progressPrinter(deps.Stdout),
	}

	res, err := runner.SearchSites(deps.Ctx, deps.Search, cfg,
		crawl.NewAggregator(d, deps.Logger, crawl.WithKeep((*newspulse.Article).HasText)))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newspulse.ErrorMessage(err))
		return err
	}

	return saveResults(deps, res, csv.NewWriter(c.Output, csv.SearchLayout(), d), c.Output)
}

// promptTopic reads one line from stdin. It returns "" when stdin is
// exhausted.
func promptTopic(deps *Dependencies) string {
	fmt.Fprint(deps.Stdout, "Enter a topic: ")
	if deps.Stdin == nil {
		return ""
	}
	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
