package p3choose_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvplane/builder"
	"github.com/katalvlaran/lvplane/color"
	"github.com/katalvlaran/lvplane/core"
	"github.com/katalvlaran/lvplane/p3choose"
	"github.com/stretchr/testify/require"
)

func k3Aug() core.GraphAug {
	g := core.Graph{
		Adj: []core.Adj{{Index: 0, Len: 2}, {Index: 2, Len: 2}, {Index: 4, Len: 2}},
		Nb:  []uint32{1, 2, 2, 0, 0, 1},
	}
	return core.Augment(g)
}

// k4Aug returns K4 embedded with vertex 2 inside the outer triangle 0-1-3,
// rotations computed by placing 0 at top, 1 bottom-left, 3 bottom-right, 2
// at the centroid and reading each vertex's neighbors clockwise.
func k4Aug() core.GraphAug {
	g := core.Graph{
		Adj: []core.Adj{
			{Index: 0, Len: 3},
			{Index: 3, Len: 3},
			{Index: 6, Len: 3},
			{Index: 9, Len: 3},
		},
		Nb: []uint32{
			3, 2, 1, // vertex 0
			0, 2, 3, // vertex 1
			3, 1, 0, // vertex 2
			1, 2, 0, // vertex 3
		},
	}
	return core.Augment(g)
}

func TestChooseK3FullLists(t *testing.T) {
	// K3, lists [{1,2,3}, {1,2,3}, {1,2,3}], outer face [0,1,2]: any
	// proper 3-coloring is acceptable.
	g := k3Aug()
	lists := []color.List{
		color.NewList(1, 2, 3),
		color.NewList(1, 2, 3),
		color.NewList(1, 2, 3),
	}
	c := p3choose.Choose(g, lists, []uint32{0, 1, 2})

	require.NotEqual(t, c[0], c[1])
	require.NotEqual(t, c[1], c[2])
	require.NotEqual(t, c[0], c[2])
	for i, l := range lists {
		require.True(t, color.HasColor(&l, c[i]))
	}
}

func TestChooseK4ConstrainedLists(t *testing.T) {
	// K4 planar, outer face [0,1,3], lists [{1,2}, {1,2}, {1,2,3}, {1,2}]:
	// the outer triangle must be properly colored from two colors plus the
	// interior vertex's third option.
	g := k4Aug()
	lists := []color.List{
		color.NewList(1, 2),
		color.NewList(1, 2),
		color.NewList(1, 2, 3),
		color.NewList(1, 2),
	}
	c := p3choose.Choose(g, lists, []uint32{0, 1, 3})

	require.NotEqual(t, c[0], c[1])
	require.NotEqual(t, c[3], c[0])
	require.NotEqual(t, c[3], c[1])
	require.Contains(t, []uint8{1, 2, 3}, c[2])
	for i, l := range lists {
		require.True(t, color.HasColor(&l, c[i]))
	}
}

func TestChooseOnRandomTriangulation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, err := builder.GenerateAbs(150, builder.WithRand(rng))
	require.NoError(t, err)
	aug := core.Augment(g)

	lists := make([]color.List, g.NumVertices())
	for v := range lists {
		lists[v] = color.NewList(1, 2, 3)
	}

	c := p3choose.Choose(aug, lists, []uint32{0, 1, 2})
	for i, l := range lists {
		require.True(t, color.HasColor(&l, c[i]))
	}
	require.True(t, color.PathColorVerify(g, c))
}
