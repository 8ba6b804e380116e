package scan

import (
	"sync"

	"github.com/poiesic/searchit/core"
)

// ResultBuffer is the shared aggregation point for per-file results. Workers
// push whole FileResult values under a single mutex; the lock is held only
// for the push and the final drain, never during file reads or matching.
type ResultBuffer struct {
	mu      sync.Mutex
	results []core.FileResult
}

// NewResultBuffer creates an empty buffer.
func NewResultBuffer() *ResultBuffer {
	return &ResultBuffer{}
}

// Push appends a result. Insertion order reflects worker completion order.
func (b *ResultBuffer) Push(result core.FileResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results = append(b.results, result)
}

// Len reports the number of buffered results.
func (b *ResultBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.results)
}

// Drain returns all buffered results in insertion order and empties the
// buffer. Intended to be called once all workers have completed.
func (b *ResultBuffer) Drain() []core.FileResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	drained := b.results
	b.results = nil
	return drained
}
