package search

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/grepl/internal/fileutil"
)

// ErrIncomplete is returned when at least one path could not be resolved,
// opened, or read. Per-path detail has already been written to the error
// stream by the time Run returns it.
var ErrIncomplete = errors.New("some paths could not be searched")

// Runner executes a search request: it resolves paths, scans each file
// line by line, and prints reported lines as they are found. Per-path
// failures are reported and skipped; they never abort the run.
type Runner struct {
	out  io.Writer
	err  io.Writer
	tint *color.Color
}

// NewRunner creates a runner writing matches to out and diagnostics to
// errOut. Diagnostics are tinted red only when errOut is a terminal; the
// -c flag governs match highlighting on out, never this.
func NewRunner(out, errOut io.Writer) *Runner {
	tint := color.New(color.FgRed)
	if f, ok := errOut.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		tint.EnableColor()
	} else {
		tint.DisableColor()
	}
	return &Runner{out: out, err: errOut, tint: tint}
}

// Run performs the full search. It returns nil when every path was scanned
// cleanly, even if nothing matched, and ErrIncomplete otherwise.
func (r *Runner) Run(req Request) error {
	matcher := NewMatcher(req.Pattern, req.Options)
	resolved := fileutil.Resolve(req.Paths, req.Options.Recursive)

	failed := false
	for _, err := range resolved.Errors {
		r.report(err)
		failed = true
	}

	for _, path := range resolved.Files {
		if err := r.scanFile(path, matcher); err != nil {
			r.report(err)
			failed = true
		}
	}

	if failed {
		return ErrIncomplete
	}
	return nil
}

// scanFile scans one file to completion. The file handle is scoped to this
// call so it is released before the next path is opened.
func (r *Runner) scanFile(path string, matcher *Matcher) error {
	file, err := os.Open(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		result := matcher.Match(lineNumber, scanner.Text())
		if result.Report(matcher.opts.InvertMatch) {
			fmt.Fprintln(r.out, matcher.Format(path, result))
		}
	}
	if err := scanner.Err(); err != nil {
		return &ReadError{Path: path, Err: err}
	}
	return nil
}

func (r *Runner) report(err error) {
	fmt.Fprintln(r.err, r.tint.Sprint(err.Error()))
}
