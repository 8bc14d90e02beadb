package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/dijkstra"
)

// ExampleSearch finds the cheapest route in a small weighted network.
func ExampleSearch() {
	g := core.NewGraph()
	a, b, c, d := g.AddVertex("a"), g.AddVertex("b"), g.AddVertex("c"), g.AddVertex("d")
	_ = g.AddEdge(a, b, 1)
	_ = g.AddEdge(b, d, 1)
	_ = g.AddEdge(a, c, 1)
	_ = g.AddEdge(c, d, 1)
	_ = g.AddEdge(a, d, 3)

	res, err := dijkstra.Search(g.View(false), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist, res.Sigma[3])
	// Output:
	// [0 1 1 2] 2
}
