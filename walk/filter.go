package walk

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

const (
	// DefaultMaxFileSize is the size ceiling for searchable files: a
	// practical bound against pathological scans, not a content policy.
	DefaultMaxFileSize = 10 << 20 // 10 MiB

	// binaryProbeSize bounds how much of a file is read to classify it as
	// binary. A NUL byte in this prefix marks the file binary; binary files
	// without an early NUL slip through, which is the accepted trade-off.
	binaryProbeSize = 1024
)

// Filter classifies filesystem entries as eligible for searching.
type Filter struct {
	maxSize int64
	policy  *IgnorePolicy
	logger  *slog.Logger
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// WithMaxFileSize overrides the size ceiling. Values below one byte fall
// back to the default.
func WithMaxFileSize(limit int64) FilterOption {
	return func(f *Filter) {
		if limit < 1 {
			limit = DefaultMaxFileSize
		}
		f.maxSize = limit
	}
}

// WithIgnorePolicy sets the glob exclusion policy. A nil policy leaves
// hidden-directory exclusion as the only path rule.
func WithIgnorePolicy(policy *IgnorePolicy) FilterOption {
	return func(f *Filter) {
		f.policy = policy
	}
}

// WithFilterLogger sets a custom logger.
// Default is slog.Default().
func WithFilterLogger(logger *slog.Logger) FilterOption {
	return func(f *Filter) {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
	}
}

// NewFilter creates a filter with the default size ceiling.
func NewFilter(opts ...FilterOption) *Filter {
	f := &Filter{
		maxSize: DefaultMaxFileSize,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Eligible reports whether the entry at path should be searched. rel is the
// path relative to the walk root, used for ignore-policy matching. Probe
// errors exclude the entry rather than failing the walk.
func (f *Filter) Eligible(path, rel string, info fs.FileInfo) bool {
	if !info.Mode().IsRegular() {
		return false
	}
	if info.Size() > f.maxSize {
		f.logger.Debug("skipping oversized file", "path", path, "size", info.Size())
		return false
	}
	if f.policy.Excluded(rel) {
		f.logger.Debug("skipping ignored file", "path", path)
		return false
	}

	binary, err := f.probeBinary(path)
	if err != nil {
		f.logger.Debug("skipping unprobeable file", "path", path, "err", err)
		return false
	}
	if binary {
		f.logger.Debug("skipping binary file", "path", path)
		return false
	}
	return true
}

// probeBinary reads at most binaryProbeSize bytes and looks for a NUL byte.
func (f *Filter) probeBinary(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buf := make([]byte, binaryProbeSize)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return false, err
	}
	return bytes.IndexByte(buf[:n], 0) >= 0, nil
}
