package gtfs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReplaceFile rewrites the file at path through write. The new content goes
// to a temporary file in the same directory, which is flushed, synced and
// closed before a single rename moves it over path. If write or any step
// before the rename fails, the temporary file is removed and path is left
// untouched. The original file mode is carried over.
func ReplaceFile(path string, write func(w io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fileAccess(path, err)
	}
	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		var fe *FileError
		if errors.As(err, &fe) {
			return err
		}
		return fileAccess(path, err)
	}
	if err := bw.Flush(); err != nil {
		return fileAccess(tmp.Name(), fmt.Errorf("flush: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fileAccess(tmp.Name(), fmt.Errorf("sync: %w", err))
	}
	if fi, err := os.Stat(path); err == nil {
		if err := tmp.Chmod(fi.Mode().Perm()); err != nil {
			return fileAccess(tmp.Name(), fmt.Errorf("chmod: %w", err))
		}
	}
	if err := tmp.Close(); err != nil {
		return fileAccess(tmp.Name(), fmt.Errorf("close: %w", err))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &FileError{Kind: ErrReplace, Path: path, Err: err}
	}
	renamed = true
	return nil
}

// ReplaceTable rewrites the table at path with recs, header first.
func ReplaceTable[T any](path string, table Table[T], recs []T) error {
	return ReplaceFile(path, func(w io.Writer) error {
		return WriteAll(w, table, recs)
	})
}
