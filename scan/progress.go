package scan

import (
	"fmt"
	"io"
	"sync"

	"github.com/poiesic/searchit/core"
)

// ProgressMonitor is a Monitor that reports how many files have been
// searched, writing a line to the configured writer every reportInterval
// files and once at the end.
type ProgressMonitor struct {
	writer         io.Writer
	reportInterval int
	mu             sync.Mutex
	total          int
	searched       int
	lastReported   int
}

var _ Monitor = (*ProgressMonitor)(nil)

// NewProgressMonitor creates a progress monitor.
// writer: where to write progress output (typically os.Stderr)
// reportInterval: report progress every N files (minimum 1)
func NewProgressMonitor(writer io.Writer, reportInterval int) *ProgressMonitor {
	if reportInterval < 1 {
		reportInterval = 1
	}
	return &ProgressMonitor{
		writer:         writer,
		reportInterval: reportInterval,
	}
}

func (p *ProgressMonitor) Start(query, root string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = 0
	p.searched = 0
	p.lastReported = 0
	fmt.Fprintf(p.writer, "searching for %q under %s\n", query, root)
}

func (p *ProgressMonitor) AfterEnumeration(entries []core.WalkEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = len(entries)
	fmt.Fprintf(p.writer, "found %d eligible files\n", p.total)
}

// FileSearched is called from multiple workers; reporting is serialized by
// the mutex.
func (p *ProgressMonitor) FileSearched(_ string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.searched++
	if p.searched-p.lastReported >= p.reportInterval && p.searched < p.total {
		p.lastReported = p.searched
		fmt.Fprintf(p.writer, "searched %d/%d files\n", p.searched, p.total)
	}
}

func (p *ProgressMonitor) FileMatched(_ core.FileResult) {}

func (p *ProgressMonitor) FileSkipped(path string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.writer, "skipped %s: %v\n", path, err)
}

func (p *ProgressMonitor) Finish(results []core.FileResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.writer, "searched %d/%d files, %d with matches\n", p.searched, p.total, len(results))
}
