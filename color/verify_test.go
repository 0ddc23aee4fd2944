package color_test

import (
	"testing"

	"github.com/katalvlaran/lvplane/color"
	"github.com/katalvlaran/lvplane/core"
	"github.com/stretchr/testify/require"
)

func k3() core.Graph {
	return core.Graph{
		Adj: []core.Adj{{Index: 0, Len: 2}, {Index: 2, Len: 2}, {Index: 4, Len: 2}},
		Nb:  []uint32{1, 2, 2, 0, 0, 1},
	}
}

func TestPathColorVerifyAcceptsTriangle(t *testing.T) {
	// K3 colored [1, 2, 2]: class 1 is a single vertex, class 2 one edge.
	g := k3()
	c := color.Coloring{1, 2, 2}
	require.True(t, color.PathColorVerify(g, c))
}

func TestPathColorVerifyRejectsTriangleMonochrome(t *testing.T) {
	// A triangle entirely one color is a 3-cycle, not a path union.
	g := k3()
	c := color.Coloring{1, 1, 1}
	require.False(t, color.PathColorVerify(g, c))
}

func TestPathColorVerifyAcceptsAllDistinct(t *testing.T) {
	g := k3()
	c := color.Coloring{1, 2, 3}
	require.True(t, color.PathColorVerify(g, c))
}

func TestListMutators(t *testing.T) {
	l := color.NewList(1, 2, 3)
	require.True(t, color.HasColor(&l, 2))
	require.False(t, color.HasColor(&l, 9))

	color.RemoveColor(&l, 2)
	require.Equal(t, uint8(2), l.Len)
	require.False(t, color.HasColor(&l, 2))

	color.ColorDifferently(&l, l.Data[0])
	require.Equal(t, uint8(1), l.Len)
	require.NotEqual(t, l.Data[0], uint8(0))
}

func TestColorDifferentlyPanicsWithoutAlternative(t *testing.T) {
	l := color.NewList(5)
	require.Panics(t, func() { color.ColorDifferently(&l, 5) })
}
