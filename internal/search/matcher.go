package search

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Matcher decides whether a line contains the literal pattern and builds
// the text to display. It is safe to reuse across files within one run.
type Matcher struct {
	pattern string
	folded  string // lowercased pattern when IgnoreCase is set
	opts    Options
	red     *color.Color
}

// NewMatcher builds a matcher for the given pattern and options.
func NewMatcher(pattern string, opts Options) *Matcher {
	m := &Matcher{
		pattern: pattern,
		opts:    opts,
		red:     color.New(color.FgRed),
	}
	if opts.IgnoreCase {
		m.folded = strings.ToLower(pattern)
	}
	if opts.Color {
		// -c is an explicit request: emit escape codes even when stdout
		// is not a terminal, overriding the library's auto-detection.
		m.red.EnableColor()
	}
	return m
}

// Match evaluates a single line and returns its result. The display text
// is highlighted only for genuine matches: inverted reporting has nothing
// to highlight.
func (m *Matcher) Match(lineNumber int, line string) MatchResult {
	matched := m.contains(line)
	display := line
	if m.opts.Color && matched && !m.opts.InvertMatch {
		display = m.highlight(line)
	}
	return MatchResult{
		LineNumber: lineNumber,
		Text:       line,
		Matched:    matched,
		Display:    display,
	}
}

func (m *Matcher) contains(line string) bool {
	if m.opts.IgnoreCase {
		return strings.Contains(strings.ToLower(line), m.folded)
	}
	return strings.Contains(line, m.pattern)
}

// highlight wraps every occurrence of the pattern in red. Occurrences are
// located case-insensitively when -i is set, but the original-case
// substring is what gets wrapped.
//
// Lowercasing can change rune widths (Ⱥ grows from 2 bytes to 3, the
// Kelvin sign shrinks to plain k), so match offsets found in the folded
// haystack are mapped back to the original string before slicing it.
func (m *Matcher) highlight(line string) string {
	if m.pattern == "" {
		return line
	}

	haystack := line
	needle := m.pattern
	var offsets []int
	if m.opts.IgnoreCase {
		haystack, offsets = foldLine(line)
		needle = m.folded
	}

	var b strings.Builder
	start := 0 // haystack coordinates
	prev := 0  // original-line coordinates
	for {
		i := strings.Index(haystack[start:], needle)
		if i < 0 {
			b.WriteString(line[prev:])
			return b.String()
		}
		i += start
		end := i + len(needle)
		origStart, origEnd := i, end
		if offsets != nil {
			origStart, origEnd = offsets[i], offsets[end]
		}
		b.WriteString(line[prev:origStart])
		b.WriteString(m.red.Sprint(line[origStart:origEnd]))
		start = end
		prev = origEnd
	}
}

// foldLine lowercases line rune by rune and records, for every byte of
// the folded result, the original byte offset of the rune it came from.
// offsets has one extra trailing entry (len(line)) so a match ending at
// the end of the folded string maps cleanly.
func foldLine(line string) (string, []int) {
	var b strings.Builder
	b.Grow(len(line))
	offsets := make([]int, 0, len(line)+1)
	for i, r := range line {
		lower := unicode.ToLower(r)
		for n := utf8.RuneLen(lower); n > 0; n-- {
			offsets = append(offsets, i)
		}
		b.WriteRune(lower)
	}
	offsets = append(offsets, len(line))
	return b.String(), offsets
}

// Format composes the printable line: filename prefix, then line-number
// prefix, then the display text, colon-separated.
func (m *Matcher) Format(path string, result MatchResult) string {
	var prefix strings.Builder
	if m.opts.WithFilename {
		prefix.WriteString(path)
		prefix.WriteByte(':')
	}
	if m.opts.LineNumbers {
		fmt.Fprintf(&prefix, "%d:", result.LineNumber)
	}
	return prefix.String() + result.Display
}
