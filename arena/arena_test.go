package arena_test

import (
	"testing"

	"github.com/katalvlaran/lvplane/arena"
	"github.com/stretchr/testify/require"
)

func TestAllocZeroesAndSizes(t *testing.T) {
	a := arena.New(256)
	ints := arena.Alloc[int32](a, 4)
	require.Len(t, ints, 4)
	for _, v := range ints {
		require.Zero(t, v)
	}
	ints[0] = 7
	require.Equal(t, int32(7), ints[0])
}

func TestSnapshotRestore(t *testing.T) {
	a := arena.New(64)
	mark := a.Snapshot()
	_ = arena.Alloc[byte](a, 32)
	require.Equal(t, 32, a.Snapshot())

	a.Restore(mark)
	require.Equal(t, mark, a.Snapshot())

	// the freed region is reusable after restore
	again := arena.Alloc[byte](a, 32)
	require.Len(t, again, 32)
}

func TestAllocPanicsWhenExhausted(t *testing.T) {
	a := arena.New(8)
	require.Panics(t, func() {
		arena.Alloc[int64](a, 2)
	})
}

func TestAllocRespectsAlignment(t *testing.T) {
	type pair struct {
		b byte
		v int64
	}
	a := arena.New(64)
	_ = arena.Alloc[byte](a, 1)
	ps := arena.Alloc[pair](a, 1)
	require.Len(t, ps, 1)
	ps[0].v = 42
	require.Equal(t, int64(42), ps[0].v)
}
