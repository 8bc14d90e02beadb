package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/sna/bfs"
	"github.com/katalvlaran/sna/core"
)

// ExampleSearch counts the shortest paths across a 4-cycle.
func ExampleSearch() {
	g := core.NewGraph()
	a, b, c, d := g.AddVertex("a"), g.AddVertex("b"), g.AddVertex("c"), g.AddVertex("d")
	_ = g.AddEdge(a, b, 1)
	_ = g.AddEdge(b, c, 1)
	_ = g.AddEdge(c, d, 1)
	_ = g.AddEdge(d, a, 1)

	res, _ := bfs.Search(g.View(false), 0)
	fmt.Println("dist:", res.Dist)
	fmt.Println("sigma:", res.Sigma)
	// Output:
	// dist: [0 1 2 1]
	// sigma: [1 1 2 1]
}
