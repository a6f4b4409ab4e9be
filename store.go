package clinics

import (
	"context"
	"time"
)

// HTMLStore keeps snapshots of fetched HTML with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type HTMLStore interface {
	Save(ctx context.Context, source string, html string) error
	Commit() error
	Abort() error
}

// Run describes one completed scrape persisted to a RecordService.
type Run struct {
	ID        string    `json:"id"`
	Records   int       `json:"records"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	// RunID selects a run. Nil selects the most recent run.
	RunID *string `json:"runId"`
	Area  *string `json:"area"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService persists scrape runs and their records.
type RecordService interface {
	RecordWriter

	// FindRuns returns all runs, newest first.
	FindRuns(ctx context.Context) ([]*Run, error)

	// FindRecords returns records of one run in their original order.
	// Returns ENOTFOUND if the run does not exist.
	FindRecords(ctx context.Context, filter RecordFilter) ([]Record, error)
}
