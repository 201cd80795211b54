// Package fileutil expands command-line path arguments into the concrete
// ordered list of files a search will scan.
//
// Regular files pass through untouched, directories are walked recursively
// when requested, and every path that cannot be expanded produces a typed
// error without stopping resolution. Output order is deterministic:
// argument order for explicit files, lexical depth-first order within a
// walked directory.
package fileutil
