package color

import "github.com/katalvlaran/lvplane/core"

// verifyCtx drives the incremental path-coloring check one vertex at a time.
type verifyCtx struct {
	graph    core.Graph
	coloring Coloring
	visited  []bool
	next     uint32
	checked  uint32
	pending  uint32
	hasPend  bool
}

func newVerifyCtx(g core.Graph, c Coloring) *verifyCtx {
	return &verifyCtx{
		graph:    g,
		coloring: c,
		visited:  make([]bool, g.NumVertices()),
	}
}

// step advances the walk by one vertex, returning true once verification is
// complete (the whole graph has been partitioned into inspected same-color
// runs).
func (ctx *verifyCtx) step() bool {
	n := uint32(ctx.graph.NumVertices())

	for !ctx.hasPend && ctx.next < n {
		var v uint32
		for {
			v = ctx.next
			ctx.next++
			if v >= n {
				return true
			}
			if !ctx.visited[v] {
				break
			}
		}

		color := ctx.coloring[v]
		if color == 0 {
			// Uncolored vertices belong to no class and need no walk.
			ctx.visited[v] = true
			ctx.checked++
			continue
		}
		colorDegree := uint32(0)
		deg := ctx.graph.Degree(v)
		for i := uint32(0); i < deg; i++ {
			nb := ctx.graph.Neighbor(v, i)
			if ctx.coloring[nb] == color {
				colorDegree++
				if colorDegree > 1 {
					break
				}
			}
		}

		if colorDegree < 2 {
			ctx.pending = v
			ctx.hasPend = true
		}
	}

	if !ctx.hasPend {
		return true
	}

	v := ctx.pending
	color := ctx.coloring[v]

	ctx.visited[v] = true
	ctx.checked++
	ctx.hasPend = false

	deg := ctx.graph.Degree(v)
	for i := uint32(0); i < deg; i++ {
		nb := ctx.graph.Neighbor(v, i)
		if ctx.coloring[nb] == color && !ctx.visited[nb] {
			if ctx.hasPend {
				// A second unvisited same-color neighbor means v has
				// color-degree >= 2: the class contains a branch or cycle.
				return true
			}
			ctx.pending = nb
			ctx.hasPend = true
		}
	}

	return false
}

func (ctx *verifyCtx) result() bool {
	return ctx.checked == uint32(ctx.graph.NumVertices())
}

// PathColorVerify reports whether coloring is a valid path coloring of g:
// every color class (excluding 0, "uncolored") induces a subgraph whose
// components are simple paths. It walks each color class incrementally,
// starting from a vertex of color-degree <= 1 and following same-colored
// neighbors; encountering a second unvisited same-colored neighbor at any
// step means that vertex has degree >= 2 in its class, which a path
// coloring forbids (branch or cycle), so the walk terminates early with an
// incomplete traversal.
func PathColorVerify(g core.Graph, coloring Coloring) bool {
	ctx := newVerifyCtx(g, coloring)
	for !ctx.step() {
	}
	return ctx.result()
}
