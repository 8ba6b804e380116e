package core

import "strconv"

// SearchConfig controls how lines are matched. It is constructed once per
// invocation and never mutated afterwards; all workers share the same value.
type SearchConfig struct {
	IgnoreCase  bool // compare query and line case-insensitively
	LineNumber  bool // prefix output lines with their 1-based line number
	InvertMatch bool // select lines that do NOT satisfy the predicate
	WholeWord   bool // require the query to occupy a complete word
	Regex       bool // treat the query as a regular expression
}

// MatchLine pairs a 1-based line number with the original line text.
// It is transient: produced when a line is selected, immediately formatted.
type MatchLine struct {
	Number int
	Text   string
}

// Format renders the line for output. With lineNumber set the line is
// rendered as "{number}:{text}", otherwise as the bare text. The text always
// preserves its original casing regardless of how matching was performed.
func (m MatchLine) Format(lineNumber bool) string {
	if lineNumber {
		return strconv.Itoa(m.Number) + ":" + m.Text
	}
	return m.Text
}

// FileResult holds the formatted matched lines for one file, in ascending
// line-number order. A FileResult is only produced for files with at least
// one matched line.
type FileResult struct {
	Path  string
	Lines []string
}

// WalkEntry is a regular file discovered by the directory walker that
// passed all eligibility checks.
type WalkEntry struct {
	Path string
	Size int64
}
