// Package crawl orchestrates article extraction: index page loading, search
// discovery, the per-URL fetch/extract/enrich unit and result aggregation.
package crawl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/newspulse"
	"golang.org/x/sync/errgroup"
)

// Runner processes discovered URLs and collects the resulting articles.
type Runner struct {
	Fetcher  newspulse.Fetcher
	Pipeline *Pipeline
	Enricher *Enricher

	// Concurrency bounds the number of URLs processed at once. Values
	// below one mean sequential processing.
	Concurrency int

	Logger   *slog.Logger
	Progress ProgressFunc
}

// Result holds the outcome of a run.
type Result struct {
	Table     *newspulse.ResultTable
	Processed int
	Dropped   int
	Failed    int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Site  string
	Topic string
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressSearching ProgressType = iota
	ProgressProcessing
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress. It may be called from
// several goroutines at once when Concurrency is above one.
type ProgressFunc func(event ProgressEvent)

// unitResult is the outcome of processing a single URL.
type unitResult struct {
	url     string
	article *newspulse.Article
	err     error
}

// CrawlIndex loads the index page at indexURL, harvests the article links
// under prefix and processes them. Only a failure to load the index is
// returned as an error.
func (r *Runner) CrawlIndex(ctx context.Context, loader newspulse.PageLoader, harvester newspulse.LinkHarvester, indexURL, prefix string, agg *Aggregator) (*Result, error) {
	html, err := loader.Load(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("index discovery: %w", err)
	}

	urls, err := harvester.Harvest(html, prefix)
	if err != nil {
		return nil, fmt.Errorf("harvest links: %w", err)
	}
	r.logger().Info("harvested article links", "index", indexURL, "count", len(urls))

	res := &Result{Table: agg.Table()}
	if err := r.Process(ctx, urls, agg, res); err != nil {
		return res, err
	}
	r.notify(ProgressEvent{Type: ProgressFinished})
	return res, nil
}

// SearchSites searches each target site for the topic and processes the
// results site by site. A failed site search is logged and skipped; the
// run fails only when every site search fails.
func (r *Runner) SearchSites(ctx context.Context, search newspulse.SearchService, cfg newspulse.SearchConfig, agg *Aggregator) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Table: agg.Table()}
	seen := newspulse.NewURLSet()
	var failedSites int
	var lastErr error

	for _, site := range cfg.TargetSites {
		r.notify(ProgressEvent{Type: ProgressSearching, Topic: cfg.Topic, Site: site})

		found, err := search.Search(ctx, cfg.Topic, site)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			r.logger().Warn("site search failed", "site", site, "err", err)
			failedSites++
			lastErr = err
			continue
		}

		var urls []string
		for _, u := range found {
			if seen.Add(u) {
				urls = append(urls, u)
			}
		}
		if err := r.Process(ctx, urls, agg, res); err != nil {
			return res, err
		}
	}

	if failedSites == len(cfg.TargetSites) {
		return res, fmt.Errorf("search discovery: every site search failed: %w", lastErr)
	}
	r.notify(ProgressEvent{Type: ProgressFinished})
	return res, nil
}

// Process runs the fetch/extract/enrich unit for each URL and feeds the
// articles to agg from a single goroutine. Per-URL failures are counted in
// res and never stop the batch; only cancellation of ctx is returned.
func (r *Runner) Process(ctx context.Context, urls []string, agg *Aggregator, res *Result) error {
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	resultCh := make(chan unitResult)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, url := range urls {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}
				r.notify(ProgressEvent{Type: ProgressProcessing, URL: url})
				a, err := r.processURL(gctx, url)
				resultCh <- unitResult{url: url, article: a, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	for result := range resultCh {
		res.Processed++
		if result.err != nil {
			res.Failed++
			r.logger().Warn("skipping article", "url", result.url, "err", result.err)
			r.notify(ProgressEvent{Type: ProgressFailed, URL: result.url, Error: result.err})
			continue
		}
		if !agg.Add(result.article) {
			res.Dropped++
		}
	}

	return ctx.Err()
}

// processURL fetches, extracts and enriches one article. Only a fetch
// failure is an error; extraction always yields a record.
func (r *Runner) processURL(ctx context.Context, url string) (*newspulse.Article, error) {
	html, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	a := r.Pipeline.Extract(ctx, url, html)
	if r.Enricher != nil {
		r.Enricher.Enrich(ctx, a)
	}
	return a, nil
}

func (r *Runner) notify(event ProgressEvent) {
	if r.Progress != nil {
		r.Progress(event)
	}
}

func (r *Runner) logger() *slog.Logger {
	return orDiscard(r.Logger)
}
