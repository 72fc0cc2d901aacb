package gtfs

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Writer writes records of one table. The full header is written when the
// writer is created, so an empty table still carries its column set.
type Writer[T any] struct {
	table Table[T]
	csv   *csv.Writer
	rows  int
}

// NewWriter writes table's header to w.
func NewWriter[T any](w io.Writer, table Table[T]) (*Writer[T], error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("%s: write header: %w", table.Name, err)
	}
	return &Writer[T]{table: table, csv: cw}, nil
}

// Write buffers one record.
func (w *Writer[T]) Write(rec T) error {
	if err := w.csv.Write(w.table.Encode(rec)); err != nil {
		return fmt.Errorf("%s: write row %d: %w", w.table.Name, w.rows+1, err)
	}
	w.rows++
	return nil
}

// Flush pushes buffered rows to the underlying writer.
func (w *Writer[T]) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("%s: flush: %w", w.table.Name, err)
	}
	return nil
}

// Rows is the number of records written so far, header excluded.
func (w *Writer[T]) Rows() int { return w.rows }

// WriteAll writes recs and flushes.
func WriteAll[T any](w io.Writer, table Table[T], recs []T) error {
	tw, err := NewWriter(w, table)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err := tw.Write(rec); err != nil {
			return err
		}
	}
	return tw.Flush()
}
