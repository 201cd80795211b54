package search

// Options holds the matching and display modifiers for a single invocation.
// It is constructed once by the command layer and never mutated afterwards.
type Options struct {
	// IgnoreCase compares pattern and line after simple lowercasing
	IgnoreCase bool
	// InvertMatch reports lines that do NOT contain the pattern
	InvertMatch bool
	// LineNumbers prefixes each reported line with its 1-based line number
	LineNumbers bool
	// Recursive descends into directories given as path arguments
	Recursive bool
	// WithFilename prefixes each reported line with its source path
	WithFilename bool
	// Color wraps every pattern occurrence in an ANSI red escape sequence
	Color bool
}

// Request is a fully parsed invocation: the literal pattern, the path
// arguments in CLI order, and the option set.
type Request struct {
	Pattern string
	Paths   []string
	Options Options
}

// Validate checks the request invariants that the flag parser cannot
// express: at least one path must be supplied. An empty pattern is legal
// and matches every line (standard substring semantics).
func (r *Request) Validate() error {
	if len(r.Paths) == 0 {
		return &UsageError{Message: "missing input paths"}
	}
	return nil
}

// MatchResult describes the outcome of matching one line. Instances are
// transient: produced, printed, and dropped without being retained.
type MatchResult struct {
	// LineNumber is 1-based and counts every line, matched or not
	LineNumber int
	// Text is the raw line as read from the file
	Text string
	// Matched reports literal containment before inversion is applied
	Matched bool
	// Display is the text to print, highlighted when color is active
	Display string
}

// Report decides whether the line should be printed under the given
// inversion setting.
func (m *MatchResult) Report(invert bool) bool {
	if invert {
		return !m.Matched
	}
	return m.Matched
}
