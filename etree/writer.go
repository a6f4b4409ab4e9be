// Package etree writes records as XML using github.com/beevik/etree.
package etree

import (
	"context"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/clinics"
)

// Ensure Writer implements clinics.RecordWriter at compile time.
var _ clinics.RecordWriter = (*Writer)(nil)

// Writer renders records as
//
//	<clinics count="N"><clinic><area>..</area><name>..</name>...</clinic></clinics>
//
// with one child element per field, in column order. Empty fields are
// written as empty elements.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteRecords writes all records as one XML document.
func (w *Writer) WriteRecords(ctx context.Context, records []clinics.Record) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("clinics")
	root.CreateAttr("count", strconv.Itoa(len(records)))

	fields := clinics.Fields()
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		el := root.CreateElement("clinic")
		for i, v := range r.Values() {
			el.CreateElement(fields[i]).SetText(v)
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w.w)
	return err
}

// ReadRecords parses a document written by Writer.
func ReadRecords(r io.Reader) ([]clinics.Record, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, clinics.Errorf(clinics.EINVALID, "parsing XML: %v", err)
	}

	root := doc.SelectElement("clinics")
	if root == nil {
		return nil, clinics.Errorf(clinics.EINVALID, "missing <clinics> root element")
	}

	fields := clinics.Fields()
	var records []clinics.Record
	for _, el := range root.SelectElements("clinic") {
		values := make([]string, len(fields))
		for i, f := range fields {
			if child := el.SelectElement(f); child != nil {
				values[i] = child.Text()
			}
		}
		rec, err := clinics.RecordFromValues(values)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
