package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesum/fs"
	"github.com/fwojciec/pagesum/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Pipeline *scrape.Pipeline
	Writer   *fs.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL             string        `required:"" help:"URL of the page to summarize"`
	Output          string        `short:"o" help:"Write the summary to this file instead of stdout"`
	Provider        string        `enum:"nebius,gemini" default:"nebius" help:"LLM provider (nebius, gemini)"`
	Model           string        `help:"Model name (default depends on provider)"`
	MaxWords        int           `default:"5000" help:"Number of page words sent to the model (0 for all)"`
	Extract         string        `enum:"text,article,readability,markdown" default:"text" help:"Text extraction mode (text, article, readability, markdown)"`
	Static          bool          `help:"Fetch with plain HTTP instead of a browser"`
	Headless        bool          `default:"true" negatable:"" help:"Run the browser headless"`
	Browser         string        `help:"Path to a Chrome or Chromium binary (env PAGESUM_BROWSER)"`
	ExtensionDir    string        `help:"Unpacked browser extension to load (env PAGESUM_EXTENSION_DIR)"`
	PageLoadTimeout time.Duration `default:"60s" help:"Page load timeout"`
	Verbose         bool          `short:"v" help:"Enable debug logging"`
}
