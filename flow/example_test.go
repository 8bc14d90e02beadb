package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/flow"
)

// ExampleMaxFlow counts the ties that must be cut to separate two actors
// joined by a direct tie and a two-step detour.
//
//	Ann ─── Bob
//	  \     /
//	   Cyd
func ExampleMaxFlow() {
	g := core.NewGraph()
	ann, bob, cyd := g.AddVertex("Ann"), g.AddVertex("Bob"), g.AddVertex("Cyd")
	_ = g.AddEdge(ann, bob, 1)
	_ = g.AddEdge(ann, cyd, 1)
	_ = g.AddEdge(cyd, bob, 1)

	v := g.View(false)
	src, _ := v.Index(ann)
	dst, _ := v.Index(bob)
	res, _ := flow.MaxFlow(context.Background(), v, src, dst)
	fmt.Println(res.Value)
	// Output:
	// 2
}
