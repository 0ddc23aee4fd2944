package p3color_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvplane/builder"
	"github.com/katalvlaran/lvplane/color"
	"github.com/katalvlaran/lvplane/p3color"
	"github.com/katalvlaran/lvplane/workerpool"
	"github.com/stretchr/testify/require"
)

func TestColorParallelK3(t *testing.T) {
	g := k3()
	pool := workerpool.New(4)
	defer pool.Close()

	par := p3color.ColorParallel(g, []uint32{0}, []uint32{1, 2}, pool, 4)

	require.Equal(t, color.Coloring{1, 2, 2}, par)
	require.True(t, color.PathColorVerify(g, par))
}

func TestColorParallelLargeTriangulation(t *testing.T) {
	// Random triangulation at n = 1119, colored by 4 frame-stealing workers.
	rng := rand.New(rand.NewSource(1119))
	g, err := builder.GenerateAbs(1119, builder.WithRand(rng))
	require.NoError(t, err)

	pool := workerpool.New(4)
	defer pool.Close()

	c := p3color.ColorParallel(g, []uint32{0}, []uint32{2, 1}, pool, 4)

	require.True(t, color.PathColorVerify(g, c))
	require.Equal(t, uint8(1), c[0])
	for _, col := range c {
		require.Contains(t, []uint8{1, 2, 3}, col)
	}
}

func TestColorParallelSingleWorker(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := builder.GenerateAbs(300, builder.WithRand(rng))
	require.NoError(t, err)

	pool := workerpool.New(1)
	defer pool.Close()

	par := p3color.ColorParallel(g, []uint32{0}, []uint32{2, 1}, pool, 1)

	require.True(t, color.PathColorVerify(g, par))
	require.Equal(t, uint8(1), par[0])
}

func TestColorParallelPoolReused(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	g := k3()
	for i := 0; i < 3; i++ {
		par := p3color.ColorParallel(g, []uint32{0}, []uint32{1, 2}, pool, 3)
		require.True(t, color.PathColorVerify(g, par))
	}
}
