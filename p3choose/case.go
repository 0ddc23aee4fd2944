package p3choose

import "github.com/katalvlaran/lvplane/color"

// Case names the twelve branch outcomes frameStep can take for a given
// frame and its next neighbor. Like p3color's Case, it is not consulted by
// frameStep itself; it exists
// for tests and instrumentation that want to assert which path a state
// takes without duplicating the branch logic.
type Case int

const (
	CaseBase Case = iota
	Case1
	Case2
	Case3_1
	Case3_2_1_A
	Case3_2_1_B
	Case3_2_2_A
	Case3_2_2_B
	Case3_2_3_1_A
	Case3_2_3_1_B
	Case3_2_3_2_A
	Case3_2_3_2_B
)

// FrameCase classifies the next transition frameStep would take without
// mutating ctx or frame. When it returns Case2, the same frameStep call
// goes on to one of the case-3 transitions for the updated frame; FrameCase
// does not report which.
func FrameCase(ctx *Ctx, frame *Frame) Case {
	zLoc := vloc(ctx, frame, frame.Z)

	zuIndex := zLoc.NbFirst
	zu := ctx.graph.Neighbor(frame.Z, zuIndex)
	u := zu.Vertex

	if zuIndex == zLoc.NbLast {
		return CaseBase
	}

	if u == frame.Y {
		return Case1
	}

	if frame.Z == frame.X {
		return Case2
	}

	zvIndex := ctx.graph.Next(frame.Z, zuIndex)
	zv := ctx.graph.Neighbor(frame.Z, zvIndex)
	v := zv.Vertex
	vLoc := vloc(ctx, frame, v)
	vColors := &ctx.vertices[v].colors
	zColor := ctx.vertices[frame.Z].colors.Data[0]

	boundary := zv.BackIndex == vLoc.NbFirst || zv.BackIndex == vLoc.NbLast

	switch {
	case vLoc.Mark == 0:
		return Case3_1
	case vLoc.Mark == frame.XLoc.Mark:
		if boundary {
			return Case3_2_1_A
		}
		return Case3_2_1_B
	case ctx.marks[vLoc.Mark] == frame.YLoc.Mark:
		if color.HasColor(vColors, zColor) {
			if boundary {
				return Case3_2_3_1_A
			}
			return Case3_2_3_1_B
		}
		if boundary {
			return Case3_2_3_2_A
		}
		return Case3_2_3_2_B
	default:
		if boundary {
			return Case3_2_2_A
		}
		return Case3_2_2_B
	}
}
