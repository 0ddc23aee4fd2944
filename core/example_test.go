package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvplane/core"
)

// ExampleAugment builds the back-index augmentation of a triangle and walks
// one half-edge across to confirm the reverse points home.
func ExampleAugment() {
	g := core.Graph{
		Adj: []core.Adj{{Index: 0, Len: 2}, {Index: 2, Len: 2}, {Index: 4, Len: 2}},
		Nb:  []uint32{1, 2, 2, 0, 0, 1},
	}

	aug := core.Augment(g)
	edge := aug.Neighbor(0, 0) // 0 -> 1
	back := aug.Neighbor(edge.Vertex, edge.BackIndex)

	fmt.Println(edge.Vertex, back.Vertex)
	// Output: 1 0
}
