package search

import (
	"strings"
	"testing"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func red(s string) string {
	return ansiRed + s + ansiReset
}

func TestMatcher_Contains(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    Options
		line    string
		matched bool
	}{
		{
			name:    "substring match",
			pattern: "cat",
			line:    "concatenate",
			matched: true,
		},
		{
			name:    "no match",
			pattern: "dog",
			line:    "concatenate",
			matched: false,
		},
		{
			name:    "case sensitive by default",
			pattern: "utility",
			line:    "Utility tool",
			matched: false,
		},
		{
			name:    "ignore case lowercase pattern",
			pattern: "utility",
			opts:    Options{IgnoreCase: true},
			line:    "UTILITY again",
			matched: true,
		},
		{
			name:    "ignore case mixed pattern",
			pattern: "UtIlItY",
			opts:    Options{IgnoreCase: true},
			line:    "utility belt",
			matched: true,
		},
		{
			name:    "empty pattern matches every line",
			pattern: "",
			line:    "anything",
			matched: true,
		},
		{
			name:    "empty pattern matches empty line",
			pattern: "",
			line:    "",
			matched: true,
		},
		{
			name:    "pattern longer than line",
			pattern: "concatenate",
			line:    "cat",
			matched: false,
		},
		{
			name:    "flag-like pattern is literal",
			pattern: "-i",
			line:    "use the -i flag",
			matched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.pattern, tt.opts)
			result := m.Match(1, tt.line)
			if result.Matched != tt.matched {
				t.Errorf("Match(%q) matched = %v, expected %v", tt.line, result.Matched, tt.matched)
			}
		})
	}
}

func TestMatcher_InvertReporting(t *testing.T) {
	m := NewMatcher("cat", Options{InvertMatch: true})

	hit := m.Match(1, "concatenate")
	if hit.Report(true) {
		t.Error("inverted search should not report a matching line")
	}

	miss := m.Match(2, "other text")
	if !miss.Report(true) {
		t.Error("inverted search should report a non-matching line")
	}
}

func TestMatcher_Highlight(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    Options
		line    string
		display string
	}{
		{
			name:    "single occurrence wraps only the pattern",
			pattern: "cat",
			opts:    Options{Color: true},
			line:    "concatenate",
			display: "con" + red("cat") + "enate",
		},
		{
			name:    "multiple occurrences wrapped independently",
			pattern: "an",
			opts:    Options{Color: true},
			line:    "banana and orange",
			display: "b" + red("an") + red("an") + "a " + red("an") + "d or" + red("an") + "ge",
		},
		{
			name:    "whole line is the pattern",
			pattern: "cat",
			opts:    Options{Color: true},
			line:    "cat",
			display: red("cat"),
		},
		{
			name:    "ignore case wraps original casing",
			pattern: "utility",
			opts:    Options{Color: true, IgnoreCase: true},
			line:    "UTILITY tool",
			display: red("UTILITY") + " tool",
		},
		{
			// U+023A lowercases to U+2C65, growing from 2 bytes to 3:
			// folded-haystack offsets overshoot the original line.
			name:    "ignore case with width-growing rune before match",
			pattern: "x",
			opts:    Options{Color: true, IgnoreCase: true},
			line:    "Ⱥx",
			display: "Ⱥ" + red("x"),
		},
		{
			// U+212A (Kelvin sign) lowercases to plain k, shrinking
			// from 3 bytes to 1; the wrapped span must still be the
			// original-case substring.
			name:    "ignore case with width-shrinking rune inside match",
			pattern: "kel",
			opts:    Options{Color: true, IgnoreCase: true},
			line:    "Kelvin scale",
			display: red("Kel") + "vin scale",
		},
		{
			name:    "ignore case with width-changing runes and multiple matches",
			pattern: "a",
			opts:    Options{Color: true, IgnoreCase: true},
			line:    "ȺAȺa",
			display: "Ⱥ" + red("A") + "Ⱥ" + red("a"),
		},
		{
			name:    "no color leaves line untouched",
			pattern: "cat",
			line:    "concatenate",
			display: "concatenate",
		},
		{
			name:    "inverted match is never highlighted",
			pattern: "cat",
			opts:    Options{Color: true, InvertMatch: true},
			line:    "concatenate",
			display: "concatenate",
		},
		{
			name:    "empty pattern has nothing to wrap",
			pattern: "",
			opts:    Options{Color: true},
			line:    "plain text",
			display: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.pattern, tt.opts)
			result := m.Match(1, tt.line)
			if result.Display != tt.display {
				t.Errorf("Display = %q, expected %q", result.Display, tt.display)
			}
		})
	}
}

func TestMatcher_HighlightLeavesNonMatchingLineAlone(t *testing.T) {
	m := NewMatcher("dog", Options{Color: true})
	result := m.Match(1, "concatenate")
	if strings.Contains(result.Display, ansiRed) {
		t.Errorf("non-matching line should carry no escape codes, got %q", result.Display)
	}
}

func TestMatcher_Format(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		path     string
		expected string
	}{
		{
			name:     "bare content",
			expected: "Utility tool",
		},
		{
			name:     "line number prefix",
			opts:     Options{LineNumbers: true},
			expected: "3:Utility tool",
		},
		{
			name:     "filename prefix",
			opts:     Options{WithFilename: true},
			path:     "docs/grep.md",
			expected: "docs/grep.md:Utility tool",
		},
		{
			name:     "filename precedes line number",
			opts:     Options{WithFilename: true, LineNumbers: true},
			path:     "docs/grep.md",
			expected: "docs/grep.md:3:Utility tool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher("Utility", tt.opts)
			result := m.Match(3, "Utility tool")
			got := m.Format(tt.path, result)
			if got != tt.expected {
				t.Errorf("Format() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
