package gtfs

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess marks a table that could not be opened, read or written.
	ErrFileAccess = errors.New("file access")
	// ErrReplace marks a failed rename of a rewritten table over its original.
	ErrReplace = errors.New("replace failed")
)

// FileError is a fatal, file-level failure. Kind is ErrFileAccess or ErrReplace.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error { return []error{e.Kind, e.Err} }

func fileAccess(path string, err error) error {
	return &FileError{Kind: ErrFileAccess, Path: path, Err: err}
}

// ParseError describes a single row that did not match its table schema.
// It never aborts a read.
type ParseError struct {
	Table string
	Line  int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.Table, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
