package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sna/core"
)

// TestConcurrentReadersAndWriters hammers the graph from several goroutines;
// run with -race to catch lock-order problems.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	const n = 64
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex("")
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_ = g.AddEdge(ids[i], ids[(i+offset+1)%n], 1)
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_ = g.View(i%2 == 0).N()
				_, _ = g.Neighbors(ids[i])
				_ = g.EdgeCount()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 4*n, g.EdgeCount())
	assert.Equal(t, n, g.View(true).N())
}
