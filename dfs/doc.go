// Package dfs implements iterative depth-first search over a core.Graph,
// producing a Tree of {Parent, Number, LeastAncestor, Lowpoint} records plus
// the DFS numbering order.
//
// As in bfs, Run drives an explicit stack-based Step function rather than
// recursing, and a vertex's Parent field doubles as its "visited" sentinel.
// LeastAncestor and Lowpoint are maintained incrementally as back-edges are
// discovered and as frames are popped, the standard ingredients for
// biconnectivity and planarity-testing algorithms built on top of a DFS
// tree.
package dfs
