package core

import "errors"

// Sentinel errors for core. Callers should branch with errors.Is, never on
// message text.
var (
	// ErrVertexOutOfRange indicates a vertex id >= the graph's vertex count.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNeighborNotFound indicates NeighborIndex/AugNeighborIndex was asked
	// for a vertex that is not actually adjacent to the queried vertex.
	ErrNeighborNotFound = errors.New("core: neighbor not found")

	// ErrLenMismatch indicates Augment or a validator was given Adj/Nb
	// slices whose lengths are mutually inconsistent.
	ErrLenMismatch = errors.New("core: adjacency length mismatch")
)
