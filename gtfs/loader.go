package gtfs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Result is one classified row of a table: a decoded record, or a parse
// failure when Err is set. Line is the 1-based line the row starts on.
type Result[T any] struct {
	Record T
	Line   int
	Err    *ParseError
}

// Failed reports whether the row could not be decoded.
func (r Result[T]) Failed() bool { return r.Err != nil }

// Reader streams the rows of a GTFS table. Columns are located by header
// name, so column order in the file does not matter and unknown columns are
// ignored. Quotes inside unquoted fields are kept verbatim; a row with the
// wrong number of fields still fails. A malformed row yields a failed Result and reading continues;
// only I/O errors stop the sequence, and are reported by Err.
type Reader[T any] struct {
	table  Table[T]
	csv    *csv.Reader
	header map[string]int
	closer io.Closer
	done   bool
	err    error
}

// NewReader reads the header row of src and returns a reader positioned on
// the first data row. An empty src is a table with no rows.
func NewReader[T any](src io.Reader, table Table[T]) (*Reader[T], error) {
	cr := csv.NewReader(src)
	cr.ReuseRecord = true
	// a bare quote inside an unquoted field is data, not a syntax error
	cr.LazyQuotes = true
	r := &Reader[T]{table: table, csv: cr, header: map[string]int{}}
	if c, ok := src.(io.Closer); ok {
		r.closer = c
	}
	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		r.done = true
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", table.Name, err)
	}
	for i, h := range head {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		r.header[strings.TrimSpace(h)] = i
	}
	return r, nil
}

// Open opens the table file at path. The returned reader owns the file.
func Open[T any](path string, table Table[T]) (*Reader[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileAccess(path, err)
	}
	r, err := NewReader(f, table)
	if err != nil {
		_ = f.Close()
		return nil, fileAccess(path, err)
	}
	return r, nil
}

// Next returns the next row. ok is false once the table is exhausted or an
// I/O error occurred.
func (r *Reader[T]) Next() (res Result[T], ok bool) {
	if r.done {
		return res, false
	}
	fields, err := r.csv.Read()
	if err != nil {
		var pe *csv.ParseError
		switch {
		case errors.Is(err, io.EOF):
			r.done = true
			return res, false
		case errors.As(err, &pe):
			res.Line = pe.StartLine
			res.Err = &ParseError{Table: r.table.Name, Line: pe.StartLine, Err: pe.Err}
			return res, true
		default:
			r.done = true
			r.err = fmt.Errorf("%s: %w", r.table.Name, err)
			return res, false
		}
	}
	res.Line, _ = r.csv.FieldPos(0)
	rec, err := r.table.Decode(r.header, fields)
	if err != nil {
		res.Err = &ParseError{Table: r.table.Name, Line: res.Line, Err: err}
		return res, true
	}
	res.Record = rec
	return res, true
}

// All iterates the remaining rows. Check Err after the loop.
func (r *Reader[T]) All() iter.Seq[Result[T]] {
	return func(yield func(Result[T]) bool) {
		for {
			res, ok := r.Next()
			if !ok || !yield(res) {
				return
			}
		}
	}
}

// ReadAll drains the reader, returning the decoded records in file order and
// the rows that failed to parse.
func (r *Reader[T]) ReadAll() ([]T, []*ParseError, error) {
	var records []T
	var failed []*ParseError
	for res := range r.All() {
		if res.Failed() {
			failed = append(failed, res.Err)
			continue
		}
		records = append(records, res.Record)
	}
	return records, failed, r.Err()
}

// Err returns the first I/O error met while reading, if any.
func (r *Reader[T]) Err() error { return r.err }

// Close closes the underlying file when the reader owns one.
func (r *Reader[T]) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// ReadFile opens path and reads every row of the table.
func ReadFile[T any](path string, table Table[T]) ([]T, []*ParseError, error) {
	r, err := Open(path, table)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()
	records, failed, err := r.ReadAll()
	if err != nil {
		return nil, nil, fileAccess(path, err)
	}
	return records, failed, nil
}
