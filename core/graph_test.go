package core_test

import (
	"testing"

	"github.com/katalvlaran/lvplane/core"
	"github.com/stretchr/testify/require"
)

// k3 returns the triangle graph 0-1-2 with a clockwise rotation system at
// every vertex, consistent with a planar embedding of K3.
func k3() core.Graph {
	return core.Graph{
		Adj: []core.Adj{{Index: 0, Len: 2}, {Index: 2, Len: 2}, {Index: 4, Len: 2}},
		Nb:  []uint32{1, 2, 2, 0, 0, 1},
	}
}

func TestGraphNeighborIndex(t *testing.T) {
	g := k3()
	require.Equal(t, uint32(0), g.NeighborIndex(0, 1))
	require.Equal(t, uint32(1), g.NeighborIndex(0, 2))
	require.Equal(t, uint32(0), g.NeighborIndex(1, 2))
}

func TestGraphNeighborIndexMissingPanics(t *testing.T) {
	g := k3()
	require.Panics(t, func() { g.NeighborIndex(0, 0) })
}

func TestGraphNextPrevWrap(t *testing.T) {
	g := k3()
	require.Equal(t, uint32(1), g.Next(0, 0))
	require.Equal(t, uint32(0), g.Next(0, 1))
	require.Equal(t, uint32(1), g.Prev(0, 0))
	require.Equal(t, uint32(0), g.Prev(0, 1))
}

func TestGraphDegree(t *testing.T) {
	g := k3()
	for v := uint32(0); v < 3; v++ {
		require.Equal(t, uint32(2), g.Degree(v))
	}
}
