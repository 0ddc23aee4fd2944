package p3color

import (
	"github.com/katalvlaran/lvplane/color"
	"github.com/katalvlaran/lvplane/core"
)

// Ctx holds the state shared by every frame: the graph being colored, each
// vertex's mark (<= 0 uncolored, 1..3 final color), and the frame stack.
type Ctx struct {
	graph  core.Graph
	marks  []int32
	frames []Frame
}

func nextNeighborIndex(g core.Graph, v, u uint32) uint32 {
	return g.Next(v, g.NeighborIndex(v, u))
}

// Init seeds ctx with one frame walking from p's first vertex toward q's
// first vertex, marking every vertex of p as color 1 (p1 distinguished by
// mark 1, the rest -1 so they are recognized as "already on a colored
// boundary" but not yet finalized) and every vertex of q as color 2.
func Init(g core.Graph, p, q []uint32) *Ctx {
	p1 := p[0]
	q1 := q[0]

	ctx := &Ctx{
		graph: g,
		marks: make([]int32, g.NumVertices()),
	}

	for _, v := range p {
		ctx.marks[v] = -1
	}
	ctx.marks[p1] = 1

	for _, v := range q {
		ctx.marks[v] = 2
	}

	ctx.frames = append(ctx.frames, Frame{
		PColor:   3,
		QColor:   2,
		U:        p1,
		UNbFirst: g.NeighborIndex(p1, q1),
		X:        p1,
		Y:        p1,
		Z:        p1,
		FaceMark: -1,
	})

	return ctx
}

// nextFrame pops the top of the frame stack, LIFO.
func (ctx *Ctx) nextFrame() (Frame, bool) {
	if len(ctx.frames) == 0 {
		return Frame{}, false
	}
	frame := ctx.frames[len(ctx.frames)-1]
	ctx.frames = ctx.frames[:len(ctx.frames)-1]
	return frame, true
}

// frameStep advances frame by one neighbor (or one u-rotation), pushing a
// child frame onto ctx.frames whenever the walk forks. Returns true when
// frame's work is complete.
func (ctx *Ctx) frameStep(frame *Frame) bool {
	pathColor := frame.PColor ^ frame.QColor
	uDeg := ctx.graph.Degree(frame.U)

	if frame.EdgeIndex == uDeg {
		if frame.Z != frame.U {
			panic("p3color: frameStep: z != u at rotation boundary")
		}

		if frame.Y == frame.U {
			if frame.X != frame.U {
				panic("p3color: frameStep: x != u at base case")
			}
			return true
		}

		if frame.X == frame.U {
			frame.X = frame.Y
		}

		frame.UNbFirst = nextNeighborIndex(ctx.graph, frame.Y, frame.U)
		frame.U = frame.Y
		frame.Z = frame.Y
		frame.EdgeIndex = 0
		frame.AbovePath = false
		frame.LastColored = false
		return false
	}

	nIndex := frame.UNbFirst + frame.EdgeIndex
	if nIndex >= uDeg {
		nIndex -= uDeg
	}
	n := ctx.graph.Neighbor(frame.U, nIndex)
	frame.EdgeIndex++

	switch {
	case frame.AbovePath:
		if ctx.marks[n] <= 0 {
			if frame.LastColored {
				frame.Z = n
				ctx.marks[n] = int32(frame.QColor)
			} else {
				ctx.marks[n] = frame.FaceMark - 1
			}
			frame.LastColored = false
		} else {
			frame.LastColored = true
			if frame.Z != frame.U {
				ctx.frames = append(ctx.frames, Frame{
					PColor:   pathColor,
					QColor:   frame.PColor,
					U:        frame.Z,
					UNbFirst: nextNeighborIndex(ctx.graph, frame.Z, frame.U),
					X:        frame.Z,
					Y:        frame.Z,
					Z:        frame.Z,
					FaceMark: frame.FaceMark - 1,
				})
				frame.Z = frame.U
			}
		}

	case n != frame.X:
		switch {
		case ctx.marks[n] > 0:
			if ctx.marks[n] == int32(frame.PColor) {
				frame.AbovePath = true
				frame.LastColored = true
			}
			if frame.X != frame.U {
				ctx.frames = append(ctx.frames, Frame{
					PColor:   pathColor,
					QColor:   frame.QColor,
					U:        frame.X,
					UNbFirst: frame.XNbFirst,
					X:        frame.X,
					Y:        frame.X,
					Z:        frame.X,
					FaceMark: frame.FaceMark - 1,
				})
				frame.X = frame.U
			}
		case ctx.marks[n] == frame.FaceMark:
			ctx.marks[n] = int32(pathColor)
			frame.Y = n
			frame.AbovePath = true
		default:
			if ctx.marks[n] <= 0 {
				ctx.marks[n] = frame.FaceMark - 1
			}
			if frame.X == frame.U {
				frame.X = n
				frame.XNbFirst = nextNeighborIndex(ctx.graph, n, frame.U)
				ctx.marks[n] = int32(frame.PColor)
			}
		}
	}

	return false
}

// Run drains ctx's frame stack and returns the resulting coloring.
func Run(ctx *Ctx) color.Coloring {
	frame, ok := ctx.nextFrame()
	for ok {
		for !ctx.frameStep(&frame) {
		}
		frame, ok = ctx.nextFrame()
	}

	out := make(color.Coloring, len(ctx.marks))
	for v, m := range ctx.marks {
		if m <= 0 || m > 3 {
			panic("p3color: Run: vertex left uncolored")
		}
		out[v] = uint8(m)
	}
	return out
}

// Color runs Poh's algorithm on g with outer-face paths p (colored 1) and
// q (colored 2), returning a per-vertex 3-coloring where each color class
// induces a disjoint union of paths.
func Color(g core.Graph, p, q []uint32) color.Coloring {
	return Run(Init(g, p, q))
}
