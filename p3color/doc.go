// Package p3color implements Poh's algorithm: given a plane triangulation
// with outer face split into two vertex-disjoint paths p and q (colors 1
// and 2 respectively), produce a byte coloring of every vertex such that
// each color class induces a disjoint union of paths.
//
// The algorithm is a single-pass, stack-driven planar-face-tracing state
// machine: Init seeds one frame at p's first vertex, frameStep advances it
// one neighbor at a time, pushing a child frame onto ctx whenever the
// current strip forks, and Run drains frames LIFO until none remain. The
// final per-vertex mark doubles as its color.
package p3color
