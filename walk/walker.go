package walk

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/poiesic/searchit/core"
)

// Walker enumerates the eligible files under a root directory.
type Walker struct {
	filter *Filter
	logger *slog.Logger
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker) error

// WithWalkerLogger sets a custom logger.
// Default is slog.Default().
func WithWalkerLogger(logger *slog.Logger) WalkerOption {
	return func(w *Walker) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// NewWalker creates a walker that applies filter to every entry.
func NewWalker(filter *Filter, opts ...WalkerOption) (*Walker, error) {
	if filter == nil {
		return nil, ErrFilterRequired
	}

	w := &Walker{
		filter: filter,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Enumerate walks the tree under root and returns the eligible files as a
// materialized list, ready to fan out across workers. Hidden directories
// below the root are pruned; the root itself is always traversed. Errors on
// individual entries are absorbed (the entry is skipped); an unreadable
// root is returned to the caller.
func (w *Walker) Enumerate(root string) ([]core.WalkEntry, error) {
	entries := []core.WalkEntry{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return fmt.Errorf("walking %s: %w", root, walkErr)
			}
			w.logger.Debug("skipping unreadable entry", "path", path, "err", walkErr)
			return nil
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			w.logger.Debug("skipping entry without metadata", "path", path, "err", err)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		if w.filter.Eligible(path, rel, info) {
			entries = append(entries, core.WalkEntry{Path: path, Size: info.Size()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
