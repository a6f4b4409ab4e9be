package mock

import (
	"context"

	"github.com/fwojciec/clinics"
)

// Compile-time interface verification.
var (
	_ clinics.RecordWriter  = (*RecordWriter)(nil)
	_ clinics.RecordService = (*RecordService)(nil)
	_ clinics.HTMLStore     = (*HTMLStore)(nil)
)

// RecordWriter is a mock implementation of clinics.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []clinics.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []clinics.Record) error {
	return w.WriteRecordsFn(ctx, records)
}

// RecordService is a mock implementation of clinics.RecordService.
type RecordService struct {
	WriteRecordsFn func(ctx context.Context, records []clinics.Record) error
	FindRunsFn     func(ctx context.Context) ([]*clinics.Run, error)
	FindRecordsFn  func(ctx context.Context, filter clinics.RecordFilter) ([]clinics.Record, error)
}

func (s *RecordService) WriteRecords(ctx context.Context, records []clinics.Record) error {
	return s.WriteRecordsFn(ctx, records)
}

func (s *RecordService) FindRuns(ctx context.Context) ([]*clinics.Run, error) {
	return s.FindRunsFn(ctx)
}

func (s *RecordService) FindRecords(ctx context.Context, filter clinics.RecordFilter) ([]clinics.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

// HTMLStore is a mock implementation of clinics.HTMLStore.
type HTMLStore struct {
	SaveFn   func(ctx context.Context, source string, html string) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *HTMLStore) Save(ctx context.Context, source string, html string) error {
	return s.SaveFn(ctx, source, html)
}

func (s *HTMLStore) Commit() error {
	return s.CommitFn()
}

func (s *HTMLStore) Abort() error {
	return s.AbortFn()
}
