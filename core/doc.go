// Package core defines the compact adjacency representation shared by every
// other lvplane package: Graph, its augmented sibling GraphAug, and the
// rotation primitives (Next, Prev, NeighborIndex) that let higher-level code
// walk a combinatorial embedding using only index arithmetic.
//
// A Graph packs every vertex's neighbor run into one flat Nb slice, addressed
// through an Adj{Index, Len} pair per vertex. The cyclic order of a run
// encodes the embedding at that vertex: Next/Prev rotate modulo the vertex's
// degree, never touching any other vertex's run. GraphAug carries the same
// skeleton but pairs each neighbor with the back-index of the reverse
// half-edge, letting callers cross an edge and immediately know where they
// came from in O(1). Augment builds a GraphAug from a Graph in O(|V|+|E|).
//
// PlaneValidate checks that a Graph's embedding is consistent: every directed
// half-edge's face is traced exactly once, and the resulting face count
// satisfies Euler's formula.
//
// None of these types allocate beyond their initial construction; callers
// supply correctly-sized backing slices rather than relying on Graph to
// grow them.
package core
