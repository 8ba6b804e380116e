package scan

import "github.com/poiesic/searchit/core"

// Monitor provides hooks to observe a pipeline run.
// Implement this interface to track enumeration, per-file outcomes, and the
// final result set.
type Monitor interface {
	Start(query, root string)
	AfterEnumeration(entries []core.WalkEntry)
	FileMatched(result core.FileResult)
	FileSkipped(path string, err error)
	FileSearched(path string)
	Finish(results []core.FileResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ string)                   {}
func (n *noopMonitor) AfterEnumeration(_ []core.WalkEntry) {}
func (n *noopMonitor) FileMatched(_ core.FileResult)       {}
func (n *noopMonitor) FileSkipped(_ string, _ error)       {}
func (n *noopMonitor) FileSearched(_ string)               {}
func (n *noopMonitor) Finish(_ []core.FileResult)          {}
