package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clinics"
)

// Ensure LoggingRecordWriter implements clinics.RecordWriter.
var _ clinics.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   clinics.RecordWriter
	name   string
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter. name identifies
// the destination in log lines, e.g. the output path.
func NewLoggingRecordWriter(next clinics.RecordWriter, name string, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, name: name, logger: logger}
}

// WriteRecords delegates to the wrapped writer and logs the outcome.
func (w *LoggingRecordWriter) WriteRecords(ctx context.Context, records []clinics.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write records",
			"dest", w.name,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecords(ctx, records)
}
