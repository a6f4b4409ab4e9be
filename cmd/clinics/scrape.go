package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/clinics"
	"github.com/fwojciec/clinics/csv"
	"github.com/fwojciec/clinics/etree"
	"github.com/fwojciec/clinics/fs"
	"github.com/fwojciec/clinics/goquery"
	"github.com/fwojciec/clinics/markdown"
	"github.com/fwojciec/clinics/scrape"
	"github.com/fwojciec/clinics/slog"
)

// Run executes the scrape command. deps.Config already carries the flags.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	logger := deps.Logger

	parser := goquery.NewParser(
		goquery.WithHeadingPolicy(cfg.HeadingPolicy()),
		goquery.WithMissingHeadingFunc(func(source string, block int) {
			logger.Warn("record block has no section heading", "source", source, "block", block+1)
		}),
	)

	scraper := &scrape.Scraper{
		Fetcher:     slog.NewLoggingFetcher(deps.Fetcher, logger),
		Parser:      slog.NewLoggingParser(parser, logger),
		RateLimiter: scrape.NewDomainLimiter(cfg.Rate),
		Concurrency: cfg.Concurrency,
	}
	if cfg.HTMLDir != "" {
		dir := filepath.Clean(cfg.HTMLDir)
		scraper.Store = fs.NewHTMLStore(filepath.Dir(dir), filepath.Base(dir))
	}

	records, err := scraper.Scrape(deps.Ctx, cfg.Sources, func(e scrape.ProgressEvent) {
		if e.Error != nil {
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s: failed\n", e.Completed, e.Total, e.Source)
			return
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s: %d records\n", e.Completed, e.Total, e.Source, e.Records)
	})
	if err != nil {
		return err
	}

	f, err := fs.CreateAtomic(cfg.Output)
	if err != nil {
		return err
	}
	if err := writeOutput(deps, f, records); err != nil {
		_ = f.Abort()
		return err
	}
	if err := f.Commit(); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.Output, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(records), cfg.Output)
	return nil
}

// writeOutput writes records to the output file and, when a database is
// configured, stores them as a run. The output file is only committed by the
// caller after both succeed.
func writeOutput(deps *Dependencies, w io.Writer, records []clinics.Record) error {
	cfg := deps.Config

	out, err := newRecordWriter(cfg, w)
	if err != nil {
		return err
	}
	out = slog.NewLoggingRecordWriter(out, cfg.Output, deps.Logger)
	if err := out.WriteRecords(deps.Ctx, records); err != nil {
		return err
	}

	if deps.Records != nil {
		db := slog.NewLoggingRecordWriter(deps.Records, cfg.DB, deps.Logger)
		if err := db.WriteRecords(deps.Ctx, records); err != nil {
			return fmt.Errorf("storing run: %w", err)
		}
	}
	return nil
}

func newRecordWriter(cfg *clinics.Config, w io.Writer) (clinics.RecordWriter, error) {
	switch cfg.Format {
	case clinics.FormatCSV:
		var opts []csv.Option
		if cfg.BOM {
			opts = append(opts, csv.WithBOM())
		}
		return csv.NewWriter(w, opts...), nil
	case clinics.FormatMarkdown:
		return markdown.NewWriter(w), nil
	case clinics.FormatXML:
		return etree.NewWriter(w), nil
	default:
		return nil, clinics.Errorf(clinics.EINVALID, "unknown output format %q", cfg.Format)
	}
}
