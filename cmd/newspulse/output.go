package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/newspulse"
	"github.com/fwojciec/newspulse/crawl"
)

// progressPrinter returns a crawl.ProgressFunc writing one line per event
// to w. Workers may report concurrently, so writes are serialized.
func progressPrinter(w io.Writer) crawl.ProgressFunc {
	var mu sync.Mutex
	return func(event crawl.ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()

		switch event.Type {
		case crawl.ProgressSearching:
			fmt.Fprintf(w, "\nSearching articles for '%s' on %s...\n\n", event.Topic, event.Site)
		case crawl.ProgressProcessing:
			fmt.Fprintf(w, "Processing %s\n", event.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(w, "  skipped %s: %v\n", event.URL, event.Error)
		}
	}
}

// saveResults reports the run counts and writes the table to out and, when
// configured, the database store.
func saveResults(deps *Dependencies, res *crawl.Result, out newspulse.ResultWriter, path string) error {
	fmt.Fprintf(deps.Stdout, "\nProcessed %d articles: %d kept, %d dropped, %d failed\n",
		res.Processed, res.Table.Len(), res.Dropped, res.Failed)

	if res.Table.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No articles were parsed successfully.")
		return nil
	}

	if err := out.WriteResults(deps.Ctx, res.Table); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newspulse.ErrorMessage(err))
		return err
	}
	if deps.Store != nil {
		if err := deps.Store.WriteResults(deps.Ctx, res.Table); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newspulse.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Results saved to %s\n", path)
	return nil
}
