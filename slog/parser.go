package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/clinics"
)

// Ensure LoggingParser implements clinics.Parser.
var _ clinics.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   clinics.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next clinics.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the record count.
func (p *LoggingParser) Parse(source, html string) (records []clinics.Record, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("parse",
			"source", source,
			"bytes", len(html),
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(source, html)
}
