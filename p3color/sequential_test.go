package p3color_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvplane/builder"
	"github.com/katalvlaran/lvplane/color"
	"github.com/katalvlaran/lvplane/core"
	"github.com/katalvlaran/lvplane/p3color"
	"github.com/stretchr/testify/require"
)

func k3() core.Graph {
	return core.Graph{
		Adj: []core.Adj{{Index: 0, Len: 2}, {Index: 2, Len: 2}, {Index: 4, Len: 2}},
		Nb:  []uint32{1, 2, 2, 0, 0, 1},
	}
}

func TestColorK3(t *testing.T) {
	// K3 with p = {0}, q = {1, 2}: no interior vertices, so the expected
	// coloring is exactly [1, 2, 2].
	g := k3()
	c := p3color.Color(g, []uint32{0}, []uint32{1, 2})
	require.Equal(t, color.Coloring{1, 2, 2}, c)
	require.True(t, color.PathColorVerify(g, c))
}

func TestColorOnRandomTriangulation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, err := builder.GenerateAbs(200, builder.WithRand(rng))
	require.NoError(t, err)

	// Outer face of GenerateAbs's output is always the cycle 0, 2, 1; split
	// it into p = {0} and q = {2, 1}, following that order.
	c := p3color.Color(g, []uint32{0}, []uint32{2, 1})

	require.True(t, color.PathColorVerify(g, c))
	for _, col := range c {
		require.GreaterOrEqual(t, col, uint8(1))
		require.LessOrEqual(t, col, uint8(3))
	}
	require.Equal(t, uint8(1), c[0])
}

func TestColorLargeTriangulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1119))
	g, err := builder.GenerateAbs(1119, builder.WithRand(rng))
	require.NoError(t, err)

	c := p3color.Color(g, []uint32{0}, []uint32{2, 1})

	require.True(t, color.PathColorVerify(g, c))
	require.Equal(t, uint8(1), c[0])
	for _, col := range c {
		require.Contains(t, []uint8{1, 2, 3}, col)
	}
}
