package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/clinics"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Config  *clinics.Config
	Fetcher clinics.Fetcher
	Records clinics.RecordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" help:"Config file (default: $CLINICS_CONFIG, then ./clinics.yaml)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Scrape  ScrapeCmd  `cmd:"" default:"withargs" help:"Scrape listing pages into a table (default)"`
	List    ListCmd    `cmd:"" help:"Print records stored in a database"`
	Sources SourcesCmd `cmd:"" help:"Print the sources that would be scraped"`
}

// ScrapeCmd is the "scrape" subcommand. Zero-valued flags keep the
// configured value.
type ScrapeCmd struct {
	Sources     []string      `arg:"" optional:"" help:"URLs or files to scrape; replaces the configured sources"`
	Output      string        `short:"o" help:"Output file (default: output.csv)"`
	Format      string        `short:"f" help:"Output format: csv, markdown or xml"`
	BOM         bool          `help:"Prefix CSV output with a UTF-8 byte order mark"`
	Strict      bool          `help:"Fail when a record block has no section heading before it"`
	Browser     bool          `short:"b" help:"Fetch web pages with headless Chrome"`
	Concurrency int           `short:"c" help:"Sources fetched at once (default: 1)"`
	Rate        float64       `help:"Requests per second per host (default: 1)"`
	Timeout     time.Duration `short:"t" help:"Fetch timeout per page (default: 10s)"`
	UserAgent   string        `name:"user-agent" help:"User-Agent header for HTTP requests"`
	DB          string        `help:"Also store the run in this SQLite database"`
	HTMLDir     string        `name:"html-dir" help:"Save fetched HTML under this directory"`
}

// Apply copies the flags that were set onto cfg.
func (c *ScrapeCmd) Apply(cfg *clinics.Config) {
	if len(c.Sources) > 0 {
		cfg.Sources = c.Sources
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.BOM {
		cfg.BOM = true
	}
	if c.Strict {
		cfg.Strict = true
	}
	if c.Browser {
		cfg.Browser = true
	}
	if c.Concurrency != 0 {
		cfg.Concurrency = c.Concurrency
	}
	if c.Rate != 0 {
		cfg.Rate = c.Rate
	}
	if c.Timeout != 0 {
		cfg.Timeout = c.Timeout
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	if c.DB != "" {
		cfg.DB = c.DB
	}
	if c.HTMLDir != "" {
		cfg.HTMLDir = c.HTMLDir
	}
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	DB    string `help:"SQLite database written by scrape --db"`
	RunID string `name:"run" help:"Run ID (default: most recent run)"`
	Area  string `help:"Only records in this area"`
	Limit int    `short:"n" help:"Maximum number of records"`
	Runs  bool   `help:"List stored runs instead of records"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct {
	Sources []string `arg:"" optional:"" help:"Sources to check instead of the configured ones"`
}

// Apply replaces the configured sources when any were given.
func (c *SourcesCmd) Apply(cfg *clinics.Config) {
	if len(c.Sources) > 0 {
		cfg.Sources = c.Sources
	}
}
