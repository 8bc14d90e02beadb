package core_test

import (
	"fmt"

	"github.com/katalvlaran/sna/core"
)

// ExampleGraph_View builds a small advice network and walks its dense view.
func ExampleGraph_View() {
	g := core.NewGraph(core.WithDirected(true))
	ann := g.AddVertex("Ann")
	bob := g.AddVertex("Bob")
	cid := g.AddVertex("Cid")
	g.AddVertex("Dee") // isolate
	_ = g.AddEdge(ann, bob, 1)
	_ = g.AddEdge(bob, cid, 2)

	v := g.View(true)
	for i := 0; i < v.N(); i++ {
		fmt.Println(v.ID(i), v.Out(i))
	}
	fmt.Println("isolates:", v.Isolates())
	// Output:
	// 1 [{1 1}]
	// 2 [{2 2}]
	// 3 []
	// isolates: 1
}
