package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvplane/bfs"
	"github.com/katalvlaran/lvplane/core"
	"github.com/stretchr/testify/require"
)

// gridGraph builds an undirected width x height 4-connected grid, vertex id
// = y*width + x, used by the shortest-path property tests below. Rotational
// consistency does not matter to BFS, so neighbors are simply listed in a
// fixed left/right/up/down order.
func gridGraph(width, height int) core.Graph {
	n := width * height
	var nb []uint32
	adj := make([]core.Adj, n)

	id := func(x, y int) uint32 { return uint32(y*width + x) }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := id(x, y)
			start := len(nb)
			if x > 0 {
				nb = append(nb, id(x-1, y))
			}
			if x < width-1 {
				nb = append(nb, id(x+1, y))
			}
			if y > 0 {
				nb = append(nb, id(x, y-1))
			}
			if y < height-1 {
				nb = append(nb, id(x, y+1))
			}
			adj[v] = core.Adj{Index: uint32(start), Len: uint32(len(nb) - start)}
		}
	}

	return core.Graph{Adj: adj, Nb: nb}
}

func TestBFSGrid4x4ShortestPath(t *testing.T) {
	// 4x4 grid, start 5 = (1,1), end 10 = (2,2); expected path length 3.
	g := gridGraph(4, 4)
	tree := bfs.Run(g, 5)

	require.True(t, bfs.Contains(tree, 10))
	path := bfs.PathToRoot(tree, 10)
	require.Len(t, path, 3)
	require.Equal(t, uint32(10), path[0])
	require.Equal(t, uint32(5), path[len(path)-1])
}

func TestBFSGridManhattanDistanceProperty(t *testing.T) {
	// Path length (vertex count) must equal |tx-sx| + |ty-sy| + 1.
	const width, height = 6, 5
	g := gridGraph(width, height)

	for sy := 0; sy < height; sy++ {
		for sx := 0; sx < width; sx++ {
			s := uint32(sy*width + sx)
			tree := bfs.Run(g, s)
			for ty := 0; ty < height; ty++ {
				for tx := 0; tx < width; tx++ {
					tgt := uint32(ty*width + tx)
					path := bfs.PathToRoot(tree, tgt)
					want := abs(tx-sx) + abs(ty-sy) + 1
					require.Len(t, path, want)
				}
			}
		}
	}
}

func TestBFSGridDegenerateWidthOne(t *testing.T) {
	g := gridGraph(1, 5)
	tree := bfs.Run(g, 0)
	path := bfs.PathToRoot(tree, 4)
	require.Len(t, path, 5)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
