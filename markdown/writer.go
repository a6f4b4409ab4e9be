// Package markdown writes records as a Markdown document using
// github.com/nao1215/markdown.
package markdown

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/clinics"
	md "github.com/nao1215/markdown"
)

// Ensure Writer implements clinics.RecordWriter at compile time.
var _ clinics.RecordWriter = (*Writer)(nil)

// DefaultTitle is the document heading used when none is set.
const DefaultTitle = "Clinics"

// Writer renders records as a single Markdown table under a heading.
type Writer struct {
	w     io.Writer
	title string
}

// Option configures a Writer.
type Option func(*Writer)

// WithTitle sets the document heading.
func WithTitle(title string) Option {
	return func(w *Writer) {
		w.title = title
	}
}

// NewWriter creates a new Writer that writes to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	mw := &Writer{w: w, title: DefaultTitle}
	for _, opt := range opts {
		opt(mw)
	}
	return mw
}

// WriteRecords writes the heading, a record count, and the record table.
func (w *Writer) WriteRecords(ctx context.Context, records []clinics.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		values := r.Values()
		for j, v := range values {
			values[j] = escapeCell(v)
		}
		rows[i] = values
	}

	doc := md.NewMarkdown(w.w)
	doc.H1(w.title)
	doc.PlainText("")
	doc.PlainText(recordCount(len(records)))
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header: clinics.Fields(),
		Rows:   rows,
	})
	return doc.Build()
}

// escapeCell keeps a value on one table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}

func recordCount(n int) string {
	if n == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", n)
}
