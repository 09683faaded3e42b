package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/fs"
	"github.com/fwojciec/pagesum/gemini"
	"github.com/fwojciec/pagesum/goquery"
	"github.com/fwojciec/pagesum/htmltomarkdown"
	pagehttp "github.com/fwojciec/pagesum/http"
	"github.com/fwojciec/pagesum/openai"
	"github.com/fwojciec/pagesum/readability"
	"github.com/fwojciec/pagesum/rod"
	"github.com/fwojciec/pagesum/scrape"
	pageslog "github.com/fwojciec/pagesum/slog"
	"github.com/fwojciec/pagesum/summary"
	"github.com/fwojciec/pagesum/trafilatura"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// DotEnvPath is read before the configuration is parsed. Empty skips it.
	DotEnvPath string

	// Environ replaces the process environment when non-nil.
	Environ map[string]string

	// WorkDir resolves relative --output paths.
	WorkDir string

	// Services for end-to-end testing.
	Fetcher   pagesum.Fetcher
	Completer pagesum.Completer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DotEnvPath: ".env",
		WorkDir:    ".",
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesum"),
		kong.Description("Summarize a web page in its own language"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	environ := m.Environ
	if environ == nil {
		environ = processEnviron()
	}
	environ, err = loadEnviron(environ, m.DotEnvPath)
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(environ)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose).With("run", uuid.NewString())

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = newFetcher(cli, cfg, logger)
	}

	extractor, err := newExtractor(cli.Extract)
	if err != nil {
		return err
	}

	completer := m.Completer
	if completer == nil {
		if completer, err = newCompleter(ctx, cli, cfg); err != nil {
			return err
		}
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Pipeline: &scrape.Pipeline{
			Pages: &scrape.PageFetcher{
				Fetcher:   pageslog.NewLoggingFetcher(fetcher, logger),
				Extractor: pageslog.NewLoggingExtractor(extractor, logger),
				MaxWords:  cli.MaxWords,
			},
			Summarizer: summary.NewSummarizer(pageslog.NewLoggingCompleter(completer, logger)),
			Logger:     logger,
		},
		Writer: fs.NewWriter(m.WorkDir),
	}

	cmd := &SummarizeCmd{
		URL:    cli.URL,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newFetcher(cli *CLI, cfg Config, logger *slog.Logger) pagesum.Fetcher {
	if cli.Static {
		return pagehttp.NewFetcher(
			pagehttp.WithTimeout(cli.PageLoadTimeout),
			pagehttp.WithUserAgent(rod.DefaultUserAgent),
			pagehttp.WithDoNotTrack(true),
		)
	}

	opts := rod.DefaultOptions()
	opts.Headless = cli.Headless
	opts.Bin = firstNonEmpty(cli.Browser, cfg.Browser)
	opts.ExtensionDir = firstNonEmpty(cli.ExtensionDir, cfg.ExtensionDir)
	opts.PageLoadTimeout = cli.PageLoadTimeout
	opts.ScriptTimeout = rod.ScriptTimeoutFor(cli.PageLoadTimeout)
	return rod.NewFetcher(opts, logger)
}

func newExtractor(mode string) (pagesum.Extractor, error) {
	switch mode {
	case "", "text":
		return goquery.NewTextExtractor(), nil
	case "article":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "markdown":
		return htmltomarkdown.NewExtractor(trafilatura.NewExtractor()), nil
	default:
		return nil, pagesum.Errorf(pagesum.EINVALID, "unknown extraction mode %q", mode)
	}
}

func newCompleter(ctx context.Context, cli *CLI, cfg Config) (pagesum.Completer, error) {
	switch cli.Provider {
	case "", "nebius":
		client := openai.NewClient(cfg.NebiusAPIKey, cfg.NebiusBaseURL)
		return openai.NewCompleter(client, firstNonEmpty(cli.Model, openai.DefaultModel)), nil
	case "gemini":
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API (is GEMINI_API_KEY set?): %w", err)
		}
		return gemini.NewCompleter(client, firstNonEmpty(cli.Model, gemini.DefaultModel)), nil
	default:
		return nil, pagesum.Errorf(pagesum.EINVALID, "unknown provider %q", cli.Provider)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
