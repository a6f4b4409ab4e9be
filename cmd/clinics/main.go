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
	"github.com/fwojciec/clinics"
	"github.com/fwojciec/clinics/fs"
	clinicshttp "github.com/fwojciec/clinics/http"
	"github.com/fwojciec/clinics/rod"
	"github.com/fwojciec/clinics/scrape"
	"github.com/fwojciec/clinics/sqlite"
	"github.com/fwojciec/clinics/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", clinics.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened when a command needs one.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
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
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clinics"),
		kong.Description("Extract clinic listings from HTML pages into a table"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		Config: cfg,
	}
	defer m.Close()

	switch cmd := kongCtx.Command(); {
	case strings.HasPrefix(cmd, "scrape"):
		cli.Scrape.Apply(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		fetcher, err := newFetcher(cfg)
		if err != nil {
			if cfg.Browser {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			}
			return err
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher

		if cfg.DB != "" {
			if err := m.openDB(cfg.DB); err != nil {
				return err
			}
			deps.Records = sqlite.NewRecordService(m.DB)
		}

	case strings.HasPrefix(cmd, "list"):
		path := cli.List.DB
		if path == "" {
			path = cfg.DB
		}
		if path == "" {
			return clinics.Errorf(clinics.EINVALID, "database path required: pass --db or set db in the config file")
		}
		if err := m.openDB(path); err != nil {
			return err
		}
		deps.Records = sqlite.NewRecordService(m.DB)

	case strings.HasPrefix(cmd, "sources"):
		cli.Sources.Apply(cfg)
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

// loadConfig returns the config file settings, or the defaults when there is
// no config file.
func loadConfig(explicit string) (*clinics.Config, error) {
	path := yaml.FindConfigFile(explicit)
	if path == "" {
		return clinics.DefaultConfig(), nil
	}
	return yaml.LoadConfig(path)
}

// newFetcher routes web sources to HTTP, or to a headless browser when
// cfg.Browser is set, and everything else to the local file system.
func newFetcher(cfg *clinics.Config) (clinics.Fetcher, error) {
	var web clinics.Fetcher
	if cfg.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		web = f
	} else {
		web = clinicshttp.NewFetcher(
			clinicshttp.WithTimeout(cfg.Timeout),
			clinicshttp.WithUserAgent(cfg.UserAgent),
		)
	}
	return &scrape.RoutingFetcher{Web: web, Files: fs.NewFetcher()}, nil
}
