package fileutil

import "fmt"

// NotFoundError reports a supplied path that does not exist. It is attached
// to the offending path only; the rest of the run continues.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no such file or directory", e.Path)
}

// NotAFileError reports a directory supplied without the recursive flag.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("%s: is a directory (use -r to search directories)", e.Path)
}
