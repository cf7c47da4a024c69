package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newspulse"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Loader     newspulse.PageLoader
	Fetcher    newspulse.Fetcher
	Search     newspulse.SearchService
	Structured newspulse.StructuredExtractor
	Tagger     newspulse.PeopleTagger
	Summarizer newspulse.Summarizer

	// Store receives the result table in addition to the CSV file when set.
	Store newspulse.ResultWriter

	Runs newspulse.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	APIKey  string `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key; AI steps are skipped without it"`
	Model   string `env:"NEWSPULSE_MODEL" default:"gemini-2.5-flash" help:"Gemini model name"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl an infinite-scroll index page and summarize its articles"`
	Search SearchCmd `cmd:"" help:"Search target sites for a topic and extract the matching articles"`
	Runs   RunsCmd   `cmd:"" help:"List runs stored in a database, or the articles of one run"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	IndexURL       string        `name:"index-url" default:"https://www.mckinsey.com/about-us/new-at-mckinsey-blog" help:"Index page to scroll"`
	Prefix         string        `default:"https://www.mckinsey.com/about-us/new-at-mckinsey-blog/" help:"Keep only article links starting with this prefix"`
	Origin         string        `default:"https://www.mckinsey.com" help:"Origin prepended to relative links"`
	Publisher      string        `default:"mckinsey" help:"Name dropped from tagged people"`
	Output         string        `short:"o" default:"scraped_articles_summary.csv" help:"CSV output path"`
	DB             string        `name:"db" help:"Also store results in this SQLite database"`
	Concurrency    int           `short:"c" default:"1" help:"Concurrent article limit"`
	SettleInterval time.Duration `name:"settle" default:"5s" help:"Wait after each scroll"`
	MaxScrolls     int           `name:"max-scrolls" default:"50" help:"Upper bound on scroll iterations"`
}

// Validate rejects flag values the crawl cannot run with.
func (c *CrawlCmd) Validate() error {
	if c.MaxScrolls < 1 {
		return newspulse.Errorf(newspulse.EINVALID, "--max-scrolls must be at least 1")
	}
	if c.Concurrency < 1 {
		return newspulse.Errorf(newspulse.EINVALID, "--concurrency must be at least 1")
	}
	return nil
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Topic       string   `arg:"" optional:"" help:"Search topic; prompted for when omitted"`
	Sites       []string `name:"site" default:"mckinsey.com,deloitte.com,bain.com" help:"Target sites (repeatable)"`
	Engine      string   `enum:"google,duckduckgo" default:"google" help:"Search engine (google, duckduckgo)"`
	Extractor   string   `enum:"gemini,trafilatura,readability,none" default:"gemini" help:"Structured extractor tried before the HTML parser"`
	Output      string   `short:"o" default:"new.csv" help:"CSV output path"`
	DB          string   `name:"db" help:"Also store results in this SQLite database"`
	Concurrency int      `short:"c" default:"1" help:"Concurrent article limit"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	ID     string `arg:"" optional:"" help:"Run ID whose articles to list"`
	DB     string `name:"db" required:"" help:"SQLite database written with --db"`
	Source string `enum:"all,crawl,search" default:"all" help:"Only list runs from this command (all, crawl, search)"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of runs to list"`
}
