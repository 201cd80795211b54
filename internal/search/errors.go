package search

import (
	"errors"
	"fmt"
	"io/fs"
)

// UsageError indicates a malformed invocation (missing pattern, missing
// paths). It aborts the run before any scanning starts.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// OpenError wraps a failure to open a resolved file for reading.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, cause(e.Err))
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ReadError wraps an I/O failure while scanning an opened file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: read failed: %v", e.Path, cause(e.Err))
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// cause strips the *fs.PathError layer the os package adds, so messages
// do not repeat the path ("x.txt: open x.txt: permission denied").
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
