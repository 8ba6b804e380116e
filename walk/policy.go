package walk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// IgnorePolicy excludes paths from a walk by glob pattern, in the style of
// version-control ignore files. Patterns are matched against the path
// relative to the walk root (slash-separated) and against the base name, so
// both "vendor/**" and "*.min.js" behave as expected.
type IgnorePolicy struct {
	patterns []string
}

// NewIgnorePolicy validates the given doublestar patterns and builds a
// policy from them. An unparsable pattern returns an error wrapping
// ErrInvalidIgnorePattern.
func NewIgnorePolicy(patterns ...string) (*IgnorePolicy, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIgnorePattern, pattern)
		}
	}
	return &IgnorePolicy{patterns: patterns}, nil
}

// ignoreFile is the on-disk shape of an ignore-policy file.
type ignoreFile struct {
	Ignore []string `yaml:"ignore"`
}

// LoadIgnoreFile reads a YAML ignore-policy file:
//
//	ignore:
//	  - "vendor/**"
//	  - "*.min.js"
func LoadIgnoreFile(path string) (*IgnorePolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ignore file %s: %w", path, err)
	}

	var file ignoreFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing ignore file %s: %w", path, err)
	}

	return NewIgnorePolicy(file.Ignore...)
}

// Excluded reports whether the path (relative to the walk root) is covered
// by any pattern. A nil policy excludes nothing.
func (p *IgnorePolicy) Excluded(rel string) bool {
	if p == nil {
		return false
	}

	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, pattern := range p.patterns {
		// Patterns were validated at construction, so Match cannot fail.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
