package p3color

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvplane/builder"
	"github.com/katalvlaran/lvplane/core"
	"github.com/stretchr/testify/require"
)

func triangle() core.Graph {
	return core.Graph{
		Adj: []core.Adj{{Index: 0, Len: 2}, {Index: 2, Len: 2}, {Index: 4, Len: 2}},
		Nb:  []uint32{1, 2, 2, 0, 0, 1},
	}
}

func TestFrameCaseTracksStepOnK3(t *testing.T) {
	ctx := Init(triangle(), []uint32{0}, []uint32{1, 2})
	frame, ok := ctx.nextFrame()
	require.True(t, ok)

	var last Case
	for {
		c := FrameCase(ctx, &frame)
		require.Equal(t, c, FrameCase(ctx, &frame), "classification must not mutate state")
		last = c
		if ctx.frameStep(&frame) {
			break
		}
	}

	// frameStep only terminates a frame from the rotation boundary with
	// y == u, which FrameCase names Case1A.
	require.Equal(t, Case1A, last)
}

func TestFrameCaseCoversStrips(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g, err := builder.GenerateAbs(120, builder.WithRand(rng))
	require.NoError(t, err)

	ctx := Init(g, []uint32{0}, []uint32{2, 1})

	seen := make(map[Case]int)
	frame, ok := ctx.nextFrame()
	for ok {
		for {
			seen[FrameCase(ctx, &frame)]++
			if ctx.frameStep(&frame) {
				break
			}
		}
		frame, ok = ctx.nextFrame()
	}

	// A non-trivial triangulation must exercise both boundary cases, the
	// below-path scan and the above-path walk.
	require.Greater(t, seen[Case1A], 0)
	require.Greater(t, seen[Case1B], 0)
	require.Greater(t, seen[Case2C], 0)
	require.Greater(t, seen[Case3A]+seen[Case3B], 0)
}
