package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/newspulse"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		return c.listArticles(deps)
	}

	filter := newspulse.RunFilter{Limit: c.Limit}
	if c.Source != "" && c.Source != "all" {
		filter.Source = &c.Source
	}
	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newspulse.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use --db with 'newspulse crawl' or 'newspulse search' to store one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %-6s  %3d articles  %s\n",
			r.ID, r.Source, r.ArticleCount, r.CreatedAt.Format(time.DateTime))
	}
	return nil
}

func (c *RunsCmd) listArticles(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newspulse.ErrorMessage(err))
		return err
	}

	articles, err := deps.Runs.FindArticles(deps.Ctx, newspulse.ArticleFilter{RunID: &run.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newspulse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Articles for %s run %s (%d total):\n\n", run.Source, run.ID, len(articles))
	for _, sa := range articles {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", sa.Position+1, sa.Article.Title, sa.Article.URL)
	}
	return nil
}
