package core_test

import (
	"testing"

	"github.com/katalvlaran/lvplane/core"
	"github.com/stretchr/testify/require"
)

func TestAugmentBackIndexInvariant(t *testing.T) {
	g := k3()
	aug := core.Augment(g)

	for v := uint32(0); v < uint32(len(g.Adj)); v++ {
		vAdj := g.Adj[v]
		for i := uint32(0); i < vAdj.Len; i++ {
			n := aug.Neighbor(v, i)
			require.Equal(t, g.Nb[vAdj.Index+i], n.Vertex, "adjacency preserved")

			back := aug.Neighbor(n.Vertex, n.BackIndex)
			require.Equal(t, v, back.Vertex, "back-index must point back to v")
			require.Equal(t, i, back.BackIndex, "back-index must be mutual")
		}
	}
}

func TestAugmentIdempotentOnReAugment(t *testing.T) {
	// Re-deriving Adj/Nb.Vertex from an already-augmented graph and
	// augmenting again must reproduce the same back-index invariant.
	g := k3()
	aug1 := core.Augment(g)

	plain := core.Graph{Adj: aug1.Adj, Nb: make([]uint32, len(aug1.Nb))}
	for i, nb := range aug1.Nb {
		plain.Nb[i] = nb.Vertex
	}
	aug2 := core.Augment(plain)

	require.Equal(t, aug1.Adj, aug2.Adj)
	require.Equal(t, aug1.Nb, aug2.Nb)
}
