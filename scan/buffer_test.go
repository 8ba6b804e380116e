package scan

import (
	"fmt"
	"sync"
	"testing"

	"github.com/poiesic/searchit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultBuffer(t *testing.T) {
	t.Run("push and drain preserve insertion order", func(t *testing.T) {
		buffer := NewResultBuffer()
		buffer.Push(core.FileResult{Path: "a.txt", Lines: []string{"one"}})
		buffer.Push(core.FileResult{Path: "b.txt", Lines: []string{"two"}})

		drained := buffer.Drain()
		require.Len(t, drained, 2)
		assert.Equal(t, "a.txt", drained[0].Path)
		assert.Equal(t, "b.txt", drained[1].Path)
	})

	t.Run("drain empties the buffer", func(t *testing.T) {
		buffer := NewResultBuffer()
		buffer.Push(core.FileResult{Path: "a.txt", Lines: []string{"one"}})

		assert.Len(t, buffer.Drain(), 1)
		assert.Empty(t, buffer.Drain())
		assert.Zero(t, buffer.Len())
	})

	t.Run("concurrent pushes lose nothing", func(t *testing.T) {
		const pushers = 32
		const perPusher = 50

		buffer := NewResultBuffer()
		var wg sync.WaitGroup
		for i := 0; i < pushers; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				for j := 0; j < perPusher; j++ {
					buffer.Push(core.FileResult{
						Path:  fmt.Sprintf("file-%d-%d", id, j),
						Lines: []string{"match"},
					})
				}
			}(i)
		}
		wg.Wait()

		drained := buffer.Drain()
		require.Len(t, drained, pushers*perPusher)

		// Whole values are inserted atomically, so every result must be
		// intact and unique.
		seen := make(map[string]bool, len(drained))
		for _, result := range drained {
			assert.False(t, seen[result.Path], "duplicate result for %s", result.Path)
			seen[result.Path] = true
			assert.Equal(t, []string{"match"}, result.Lines)
		}
	})
}
