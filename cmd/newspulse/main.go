package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newspulse"
	"github.com/fwojciec/newspulse/crawl"
	"github.com/fwojciec/newspulse/gemini"
	"github.com/fwojciec/newspulse/goquery"
	"github.com/fwojciec/newspulse/htmltomarkdown"
	nphttp "github.com/fwojciec/newspulse/http"
	"github.com/fwojciec/newspulse/readability"
	"github.com/fwojciec/newspulse/rod"
	npslog "github.com/fwojciec/newspulse/slog"
	"github.com/fwojciec/newspulse/sqlite"
	"github.com/fwojciec/newspulse/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database opened when --db is given.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newspulse"),
		kong.Description("Collect and summarize news articles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newspulse --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	defer m.Close()

	if cmd == "runs" {
		store, err := m.openStore(cli.Runs.DB, "")
		if err != nil {
			return err
		}
		deps.Runs = store
		return kongCtx.Run(deps)
	}

	client, err := newGeminiClient(ctx, cli.APIKey, stderr)
	if err != nil {
		return err
	}
	deps.Fetcher = npslog.NewLoggingFetcher(nphttp.NewFetcher(), logger)

	var dbPath string
	switch cmd {
	case "crawl":
		c := cli.Crawl
		dbPath = c.DB
		loader := crawl.NewPageLoader(rod.NewRenderer(),
			crawl.WithSettleInterval(c.SettleInterval),
			crawl.WithMaxScrolls(c.MaxScrolls),
			crawl.WithLoaderLogger(logger),
		)
		deps.Loader = npslog.NewLoggingPageLoader(loader, logger)
		if client != nil {
			deps.Tagger = npslog.NewLoggingPeopleTagger(gemini.NewPeopleTagger(client, cli.Model), logger)
			deps.Summarizer = npslog.NewLoggingSummarizer(gemini.NewSummarizer(client, cli.Model), logger)
		}

	case "search":
		c := cli.Search
		dbPath = c.DB
		engine, err := engineFor(c.Engine)
		if err != nil {
			return err
		}
		deps.Search = npslog.NewLoggingSearchService(goquery.NewSearchService(deps.Fetcher, engine), logger)

		structured, err := structuredFor(c.Extractor, client, cli.Model, logger)
		if err != nil {
			return err
		}
		if structured != nil {
			deps.Structured = npslog.NewLoggingExtractor(structured, c.Extractor, logger)
		}
	}

	if dbPath != "" {
		store, err := m.openStore(dbPath, cmd)
		if err != nil {
			return err
		}
		deps.Store = store
	}

	return kongCtx.Run(deps)
}

// newGeminiClient connects to the Gemini API. Without an API key it warns
// and returns a nil client so the AI steps are skipped.
func newGeminiClient(ctx context.Context, apiKey string, stderr io.Writer) (*genai.Client, error) {
	if apiKey == "" {
		fmt.Fprintln(stderr, "warning: GEMINI_API_KEY not set, AI steps are skipped. Get an API key at https://aistudio.google.com/apikey")
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

// openStore opens the SQLite database at path and returns a store whose
// runs are labelled with source.
func (m *Main) openStore(path, source string) (*sqlite.ArticleStore, error) {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return sqlite.NewArticleStore(m.DB, source), nil
}

func engineFor(name string) (goquery.SearchEngine, error) {
	switch name {
	case "google":
		return goquery.GoogleEngine(), nil
	case "duckduckgo":
		return goquery.DuckDuckGoEngine(), nil
	}
	return goquery.SearchEngine{}, newspulse.Errorf(newspulse.EINVALID, "unknown search engine %q", name)
}

// structuredFor builds the tier-one extractor named by the --extractor flag.
// It returns nil when structured extraction is disabled or unavailable.
func structuredFor(name string, client *genai.Client, model string, logger *slog.Logger) (newspulse.StructuredExtractor, error) {
	switch name {
	case "none":
		return nil, nil
	case "trafilatura":
		return trafilatura.NewStructuredExtractor(), nil
	case "readability":
		return readability.NewStructuredExtractor(), nil
	case "gemini":
		if client == nil {
			logger.Warn("gemini extractor needs an API key, using the HTML parser only")
			return nil, nil
		}
		var opts []gemini.ExtractorOption
		counter, err := gemini.NewTokenCounter(model)
		if err != nil {
			logger.Warn("token counter unavailable, prompts are not fitted", "model", model, "err", err)
		} else {
			opts = append(opts, gemini.WithTokenCounter(counter, gemini.DefaultTokenBudget))
		}
		return gemini.NewStructuredExtractor(client, model, htmltomarkdown.NewConverter(), opts...), nil
	}
	return nil, newspulse.Errorf(newspulse.EINVALID, "unknown extractor %q", name)
}
