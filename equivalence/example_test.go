package equivalence_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sna/builder"
	"github.com/katalvlaran/sna/equivalence"
)

// ExampleCluster groups the structurally equivalent leaves of a star.
func ExampleCluster() {
	g, _ := builder.BuildGraph(nil, nil, builder.Star(4))
	tab, _ := equivalence.Dissimilarity(g, equivalence.DistHamming, equivalence.Options{IncludeDiagonal: true})
	d, _ := equivalence.Cluster(context.Background(), tab, equivalence.Complete)
	for _, m := range d.Merges {
		fmt.Printf("%d+%d at %g -> %v\n", m.A, m.B, m.Height, m.Members)
	}
	// Output:
	// 1+2 at 0 -> [2 3]
	// 3+4 at 0 -> [2 3 4]
	// 0+5 at 4 -> [1 2 3 4]
}
