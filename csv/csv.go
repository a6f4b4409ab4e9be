// Package csv writes and reads records in the comma-separated table format:
// a header row of field names followed by one row per record.
package csv

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"slices"

	"github.com/fwojciec/clinics"
)

// Ensure Writer implements clinics.RecordWriter at compile time.
var _ clinics.RecordWriter = (*Writer)(nil)

const bom = "\ufeff"

// Writer writes records as CSV.
type Writer struct {
	w   io.Writer
	bom bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithBOM prefixes the output with a UTF-8 byte order mark so spreadsheet
// applications detect the encoding.
func WithBOM() Option {
	return func(w *Writer) {
		w.bom = true
	}
}

// NewWriter creates a new Writer that writes to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	cw := &Writer{w: w}
	for _, opt := range opts {
		opt(cw)
	}
	return cw
}

// WriteRecords writes the header row and one row per record.
func (w *Writer) WriteRecords(ctx context.Context, records []clinics.Record) error {
	if w.bom {
		if _, err := io.WriteString(w.w, bom); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w.w)
	if err := cw.Write(clinics.Fields()); err != nil {
		return err
	}
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRecords reads a table written by Writer. A leading byte order mark is
// ignored. Returns EINVALID if the header does not list the record fields.
func ReadRecords(r io.Reader) ([]clinics.Record, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && string(head) == bom {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = len(clinics.Fields())

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, clinics.Errorf(clinics.EINVALID, "missing header row")
	} else if err != nil {
		return nil, clinics.Errorf(clinics.EINVALID, "reading header: %v", err)
	}
	if !slices.Equal(header, clinics.Fields()) {
		return nil, clinics.Errorf(clinics.EINVALID, "unexpected header %v", header)
	}

	var records []clinics.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, clinics.Errorf(clinics.EINVALID, "reading row %d: %v", len(records)+1, err)
		}
		rec, err := clinics.RecordFromValues(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
