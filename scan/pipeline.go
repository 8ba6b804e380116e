package scan

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/search"
	"github.com/poiesic/searchit/walk"
)

// Pipeline orchestrates a directory search: it enumerates eligible files,
// fans per-file searches out across a fixed-size worker pool, and collects
// non-empty results. Reading and matching happen outside any lock; only the
// push into the shared buffer is a critical section.
type Pipeline struct {
	walker *walk.Walker
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent file searches.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a pipeline that searches the files discovered by walker.
func NewPipeline(walker *walk.Walker, opts ...Option) (*Pipeline, error) {
	if walker == nil {
		return nil, ErrWalkerRequired
	}

	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		walker: walker,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Run searches for query under root and returns the per-file results in
// worker completion order. An invalid query or unreadable root fails the
// run before any worker starts; per-file read errors only skip that file.
// Zero matches is a valid outcome, not an error.
//
// Cancelling ctx stops the dispatch of further files; a worker already
// blocked in a file read still runs to completion.
func (p *Pipeline) Run(ctx context.Context, root, query string, cfg core.SearchConfig) ([]core.FileResult, error) {
	return p.RunWithMonitor(ctx, root, query, cfg, nil)
}

// RunWithMonitor is Run with per-stage observation hooks. The monitor
// receives callbacks during enumeration and from worker goroutines; a nil
// monitor disables observation.
func (p *Pipeline) RunWithMonitor(ctx context.Context, root, query string, cfg core.SearchConfig, monitor Monitor) ([]core.FileResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query, root)

	// The matcher is compiled exactly once and shared by every worker.
	engine, err := search.NewEngine(query, cfg)
	if err != nil {
		return nil, err
	}

	entries, err := p.walker.Enumerate(root)
	if err != nil {
		return nil, err
	}
	monitor.AfterEnumeration(entries)

	buffer := NewResultBuffer()
	var wg sync.WaitGroup

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		path := entry.Path
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			lines, err := engine.SearchFile(path)
			monitor.FileSearched(path)
			if err != nil {
				p.logger.Debug("skipping unreadable file", "path", path, "err", err)
				monitor.FileSkipped(path, err)
				return
			}
			if len(lines) == 0 {
				return
			}

			result := core.FileResult{Path: path, Lines: lines}
			buffer.Push(result)
			monitor.FileMatched(result)
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Debug("skipping file, pool rejected task", "path", path, "err", submitErr)
			monitor.FileSkipped(path, submitErr)
		}
	}

	wg.Wait()

	results := buffer.Drain()
	monitor.Finish(results)

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
