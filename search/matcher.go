package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/poiesic/searchit/core"
)

// Matcher reports whether a single line satisfies the query. Implementations
// are stateless after construction and safe for concurrent use.
type Matcher interface {
	Match(line string) bool
}

// NewMatcher selects and compiles the matching strategy for query under cfg.
// Compilation happens exactly once; a pattern that does not compile returns
// an error wrapping ErrInvalidPattern, which callers treat as fatal for the
// whole search.
func NewMatcher(query string, cfg core.SearchConfig) (Matcher, error) {
	switch {
	case cfg.Regex:
		pattern := query
		if cfg.WholeWord {
			pattern = `\b(?:` + pattern + `)\b`
		}
		return compile(pattern, cfg.IgnoreCase)
	case cfg.WholeWord:
		// Literal whole-word mode still uses word boundaries so that
		// punctuation-adjacent tokens like "(test)" and "test," match.
		pattern := `\b` + regexp.QuoteMeta(query) + `\b`
		return compile(pattern, cfg.IgnoreCase)
	default:
		m := &literalMatcher{query: query, fold: cfg.IgnoreCase}
		if m.fold {
			m.query = strings.ToLower(query)
		}
		return m, nil
	}
}

func compile(pattern string, fold bool) (Matcher, error) {
	if fold {
		pattern = `(?i)` + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &regexMatcher{re: re}, nil
}

// literalMatcher performs substring containment. In case-insensitive mode
// the query is lowered once at construction; only the line is lowered per
// comparison.
type literalMatcher struct {
	query string
	fold  bool
}

var _ Matcher = (*literalMatcher)(nil)

func (m *literalMatcher) Match(line string) bool {
	if m.fold {
		line = strings.ToLower(line)
	}
	return strings.Contains(line, m.query)
}

// regexMatcher backs both regex modes and literal whole-word mode.
type regexMatcher struct {
	re *regexp.Regexp
}

var _ Matcher = (*regexMatcher)(nil)

func (m *regexMatcher) Match(line string) bool {
	return m.re.MatchString(line)
}
