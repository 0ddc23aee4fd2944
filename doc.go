// Package lvplane is an algorithmic kernel for plane graphs: planar
// graphs carrying a fixed combinatorial embedding.
//
// 🚀 What is lvplane?
//
//	A compact, index-based toolkit that brings together:
//
//	  • Core primitives: flat adjacency + half-edge (back-index) graphs
//	  • Generators: randomized plane triangulations, embedded or abstract
//	  • Colorings: Poh 3-path-coloring & Hartman 3-list-choosability,
//	    each with a sequential and a frame-stealing parallel driver
//
// ✨ Why choose lvplane?
//
//   - Pointer-free          — embeddings are rotation systems over one flat slice
//   - Allocation-disciplined — working sets sized up front from |E| <= 3|V|-6
//   - Verifiable            — every coloring is checkable with PathColorVerify
//   - Pure Go               — no cgo, a single test-only dependency
//
// Under the hood, everything is organized into small root-level packages:
//
//	core/       — Graph, GraphAug, rotation primitives, augmentation, plane validation
//	builder/    — randomized plane-triangulation generators
//	p3color/    — Poh path 3-coloring (sequential + parallel)
//	p3choose/   — Hartman 3-list-choosability (sequential + parallel)
//	color/      — colorings, candidate-color lists, path-coloring verification
//	bfs/, dfs/  — incremental traversal state machines over core.Graph
//	pio/        — bit-exact binary graph serialization
//
// plus the collaborator packages arena/, prng/ and workerpool/. The parallel
// drivers take a workerpool.Pool; arena/ and prng/ stand alone and are not
// imported by any other lvplane package.
//
// Quick ASCII example:
//
//	      0
//	     /|\
//	    / 2 \
//	   /./ \.\
//	  1───────3
//
//	K4 embedded with vertex 2 interior: the outer face is the cycle 0-1-3.
//
// The packages' Example functions are runnable end-to-end scenarios, from a
// three-vertex path coloring (p3color) to grid BFS distances (bfs); the
// p3color parallel tests color a random 1119-vertex triangulation with four
// workers.
package lvplane
