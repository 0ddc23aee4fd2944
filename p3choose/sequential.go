package p3choose

import (
	"github.com/katalvlaran/lvplane/color"
	"github.com/katalvlaran/lvplane/core"
)

// vertexState is the shared per-vertex record outside any active frame: its
// fan location and its remaining candidate-color list.
type vertexState struct {
	loc    vertexLoc
	colors color.List
}

// Ctx holds the state shared across every frame of a single list-coloring
// run: the augmented graph, each vertex's shadow state, the union-find-style
// mark table (read by frameStep to detect case 3.2.3 and written in its
// case-3.2.3.2 branch), the
// frame stack, and the next fresh mark to hand out.
type Ctx struct {
	graph    core.GraphAug
	vertices []vertexState
	marks    []uint32
	frames   []Frame
	nextMark uint32
}

// Init seeds ctx from lists (one List per vertex) and cwiseOuterFace, the
// outer face's vertices listed clockwise. The outer face's first vertex is
// pinned to its list's first color (mirroring p3color pinning p1 to color
// 1); every other vertex keeps its full list until absorbed.
func Init(g core.GraphAug, lists []color.List, cwiseOuterFace []uint32) *Ctx {
	n := g.NumVertices()
	ctx := &Ctx{
		graph:    g,
		vertices: make([]vertexState, n),
		marks:    make([]uint32, 3*n-6+1),
		frames:   make([]Frame, 0, 3*n-6),
		nextMark: 1,
	}

	for v := 0; v < n; v++ {
		ctx.vertices[v].colors = lists[v]
	}
	for i := range ctx.marks {
		ctx.marks[i] = uint32(i)
	}

	faceMark := ctx.nextMark
	ctx.nextMark++

	u := cwiseOuterFace[len(cwiseOuterFace)-1]
	for i := 0; i < len(cwiseOuterFace); i++ {
		v := cwiseOuterFace[i]

		vuIndex := g.AugNeighborIndex(v, u)
		uvIndex := g.Neighbor(v, vuIndex).BackIndex

		ctx.vertices[v].loc.NbFirst = vuIndex
		ctx.vertices[u].loc.NbLast = uvIndex
		ctx.vertices[v].loc.Mark = faceMark

		u = v
	}

	xyv := cwiseOuterFace[0]
	xyvLoc := &ctx.vertices[xyv].loc
	xyvLoc.Mark = ctx.nextMark
	ctx.nextMark++

	xyvColors := &ctx.vertices[xyv].colors
	if xyvColors.Len == 0 {
		panic("p3choose: Init: outer-face vertex has an empty list")
	}
	xyvColors.Len = 1

	ctx.frames = append(ctx.frames, Frame{
		X: xyv, Y: xyv, Z: xyv,
		XLoc: *xyvLoc,
	})

	return ctx
}

func (ctx *Ctx) nextFrame() (Frame, bool) {
	if len(ctx.frames) == 0 {
		return Frame{}, false
	}
	frame := ctx.frames[len(ctx.frames)-1]
	ctx.frames = ctx.frames[:len(ctx.frames)-1]
	return frame, true
}

// frameStep advances frame by one step of its fan walk around Z, absorbing
// or splitting off the next neighbor. Returns true when frame's fan is
// exhausted.
func (ctx *Ctx) frameStep(frame *Frame) bool {
	zLoc := vloc(ctx, frame, frame.Z)
	zColors := &ctx.vertices[frame.Z].colors
	zColor := zColors.Data[0]

	zuIndex := zLoc.NbFirst
	zu := ctx.graph.Neighbor(frame.Z, zuIndex)
	u := zu.Vertex
	uLoc := vloc(ctx, frame, u)

	if zuIndex == zLoc.NbLast {
		if frame.X == frame.Y {
			if frame.Z != frame.X {
				panic("p3choose: frameStep: z != x at base case")
			}
			color.ColorDifferently(&ctx.vertices[u].colors, zColor)
		}
		return true
	}

	if u == frame.Y {
		if frame.Z != frame.X {
			panic("p3choose: frameStep: z != x before fan rotation")
		}

		frame.XLoc, frame.YLoc = frame.YLoc, frame.XLoc
		frame.Y = frame.X
		frame.X = u
		frame.Z = u

		frame.XLoc.Mark = ctx.nextMark
		ctx.nextMark++
		frame.YLoc.Mark = frame.XLoc.Mark

		return false
	}

	uLoc.NbLast = ctx.graph.Prev(u, uLoc.NbLast)
	zLoc.NbFirst = ctx.graph.Next(frame.Z, zLoc.NbFirst)

	if frame.Z == frame.X {
		color.ColorDifferently(&ctx.vertices[u].colors, zColor)

		if frame.Z == frame.Y {
			frame.YLoc = frame.XLoc
		} else {
			frame.ZLoc = frame.XLoc
		}

		frame.X = u
		frame.XLoc = *uLoc
		frame.XLoc.Mark = ctx.nextMark
		ctx.nextMark++

		zLoc = vloc(ctx, frame, frame.Z)
	}

	zvIndex := ctx.graph.Next(frame.Z, zuIndex)
	zv := ctx.graph.Neighbor(frame.Z, zvIndex)
	v := zv.Vertex
	vLoc := vloc(ctx, frame, v)
	vColors := &ctx.vertices[v].colors

	switch {
	case vLoc.Mark == 0:
		*vLoc = vertexLoc{
			Mark:    frame.XLoc.Mark,
			NbFirst: ctx.graph.Next(v, zv.BackIndex),
			NbLast:  zv.BackIndex,
		}
		color.RemoveColor(vColors, zColor)

	case vLoc.Mark == frame.XLoc.Mark:
		if zvIndex == zLoc.NbLast {
			if frame.Z != frame.Y {
				panic("p3choose: frameStep: z != y closing the fan")
			}
			if v != frame.X {
				panic("p3choose: frameStep: v != x closing the fan")
			}
			vLoc.NbFirst = ctx.graph.Next(v, zv.BackIndex)
			vLoc.Mark = ctx.nextMark
			ctx.nextMark++
			frame.Y = frame.X
			frame.Z = frame.X
		} else {
			newMark := ctx.nextMark
			ctx.nextMark++
			ctx.frames = append(ctx.frames, Frame{
				X: v, Y: v, Z: v,
				XLoc: vertexLoc{
					Mark:    newMark,
					NbFirst: ctx.graph.Next(v, zv.BackIndex),
					NbLast:  vLoc.NbLast,
				},
			})
			vLoc.NbLast = zv.BackIndex
		}

	case ctx.marks[vLoc.Mark] == frame.YLoc.Mark:
		if vLoc.NbFirst != zv.BackIndex {
			newMark := ctx.nextMark
			ctx.nextMark++
			ctx.frames = append(ctx.frames, Frame{
				X: v, Y: frame.Z, Z: v,
				XLoc: vertexLoc{
					Mark:    newMark,
					NbFirst: vLoc.NbFirst,
					NbLast:  zv.BackIndex,
				},
				YLoc: vertexLoc{
					Mark:    newMark,
					NbFirst: zvIndex,
					NbLast:  zLoc.NbLast,
				},
			})
		}

		vLoc.NbFirst = ctx.graph.Next(v, zv.BackIndex)

		if color.HasColor(vColors, zColor) {
			vColors.Data[0] = zColor
			vColors.Len = 1

			frame.Z = v
			frame.ZLoc = *vLoc
		} else {
			ctx.marks[frame.XLoc.Mark] = frame.YLoc.Mark
			frame.Z = frame.X
		}

	default:
		color.ColorDifferently(vColors, zColor)
		if vLoc.NbFirst != zv.BackIndex {
			newMark := ctx.nextMark
			ctx.nextMark++
			ctx.frames = append(ctx.frames, Frame{
				X: v, Y: frame.Y, Z: frame.Z,
				XLoc: vertexLoc{
					Mark:    newMark,
					NbFirst: vLoc.NbFirst,
					NbLast:  zv.BackIndex,
				},
				YLoc: frame.YLoc,
				ZLoc: frame.ZLoc,
			})

			vLoc.Mark = frame.XLoc.Mark
			vLoc.NbFirst = ctx.graph.Next(v, zv.BackIndex)

			frame.Z = frame.X
			frame.Y = v
			frame.YLoc = *vLoc
		} else {
			if frame.Z != frame.Y {
				panic("p3choose: frameStep: z != y absorbing v")
			}
			vLoc.NbFirst = ctx.graph.Next(v, zv.BackIndex)
			vLoc.Mark = frame.XLoc.Mark
			frame.Y = v
			frame.YLoc = *vLoc

			frame.Z = frame.X
		}
	}

	return false
}

// Run drains ctx's frame stack and returns the resulting coloring, one
// committed color per vertex.
func Run(ctx *Ctx) color.Coloring {
	frame, ok := ctx.nextFrame()
	for ok {
		for !ctx.frameStep(&frame) {
		}
		frame, ok = ctx.nextFrame()
	}

	out := make(color.Coloring, len(ctx.vertices))
	for v := range ctx.vertices {
		if ctx.vertices[v].colors.Len != 1 {
			panic("p3choose: Run: vertex left with an unresolved list")
		}
		out[v] = ctx.vertices[v].colors.Data[0]
	}
	return out
}

// Choose runs Hartman's list-coloring algorithm on g (a plane triangulation
// given in augmented form) with cwiseOuterFace its outer face listed
// clockwise and lists the per-vertex candidate-color lists (each of size 1
// to 3). It returns a path coloring where every vertex's chosen color comes
// from its own list.
func Choose(g core.GraphAug, lists []color.List, cwiseOuterFace []uint32) color.Coloring {
	return Run(Init(g, lists, cwiseOuterFace))
}
