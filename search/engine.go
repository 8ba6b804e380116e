package search

import (
	"fmt"
	"os"
	"strings"

	"github.com/poiesic/searchit/core"
)

// Engine scans file contents line by line with a matcher compiled once for
// the whole search. An Engine is immutable after construction and safe to
// share across parallel workers.
type Engine struct {
	matcher Matcher
	cfg     core.SearchConfig
}

// NewEngine compiles the matching strategy for query under cfg. An invalid
// regular expression fails here, before any file is scanned.
func NewEngine(query string, cfg core.SearchConfig) (*Engine, error) {
	matcher, err := NewMatcher(query, cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{matcher: matcher, cfg: cfg}, nil
}

// Search scans contents and returns the formatted matched lines in ascending
// line-number order. A line is selected when the matcher result XOR
// InvertMatch is true; line numbers are 1-based positions in the original
// contents.
func (e *Engine) Search(contents string) []string {
	if contents == "" {
		return nil
	}

	var results []string
	for i, line := range splitLines(contents) {
		if e.matcher.Match(line) != e.cfg.InvertMatch {
			m := core.MatchLine{Number: i + 1, Text: line}
			results = append(results, m.Format(e.cfg.LineNumber))
		}
	}
	return results
}

// SearchFile reads path fully into memory and searches it. Read failures
// are reported to the caller; whether they are fatal is the caller's call
// (file-scoped during a directory scan, fatal on the single-file path).
func (e *Engine) SearchFile(path string) ([]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return e.Search(string(contents)), nil
}

// Search compiles query under cfg and scans contents in one call.
func Search(query, contents string, cfg core.SearchConfig) ([]string, error) {
	engine, err := NewEngine(query, cfg)
	if err != nil {
		return nil, err
	}
	return engine.Search(contents), nil
}

// SearchFile compiles query under cfg and searches a single file. This is
// the fast path used when the root path is itself a regular file; the
// directory walker is bypassed entirely.
func SearchFile(path, query string, cfg core.SearchConfig) ([]string, error) {
	engine, err := NewEngine(query, cfg)
	if err != nil {
		return nil, err
	}
	return engine.SearchFile(path)
}

// splitLines splits contents into lines without the terminating line
// breaks. Both "\n" and "\r\n" are handled; a trailing newline does not
// produce a final empty line.
func splitLines(contents string) []string {
	lines := strings.Split(contents, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
