package p3color

// Case names the eleven branch outcomes frameStep can take for a given
// frame and its next neighbor. It is not consulted by frameStep itself
// (frameStep re-derives the same branch inline); FrameCase exists so tests
// and instrumentation can assert
// which path a given state takes without duplicating the branch logic.
type Case int

const (
	Case1A Case = iota
	Case1B
	Case2A
	Case2B
	Case2C
	Case2D
	Case2E
	Case2F
	Case3A
	Case3B
	Case3C
)

// FrameCase classifies the next transition frameStep would take without
// mutating ctx or frame.
func FrameCase(ctx *Ctx, frame *Frame) Case {
	uDeg := ctx.graph.Degree(frame.U)

	if frame.EdgeIndex == uDeg {
		if frame.Y == frame.U {
			return Case1A
		}
		return Case1B
	}

	nIndex := frame.UNbFirst + frame.EdgeIndex
	if nIndex >= uDeg {
		nIndex -= uDeg
	}
	n := ctx.graph.Neighbor(frame.U, nIndex)

	if frame.AbovePath {
		if ctx.marks[n] <= 0 {
			if frame.LastColored {
				return Case3A
			}
			return Case3B
		}
		if frame.Z != frame.U {
			return Case3C
		}
	} else if n != frame.X {
		if ctx.marks[n] > 0 {
			if ctx.marks[n] == int32(frame.PColor) {
				return Case2A
			}
			if frame.X != frame.U {
				return Case2B
			}
		} else if ctx.marks[n] == frame.FaceMark {
			return Case2C
		} else {
			if frame.X == frame.U {
				return Case2D
			}
			return Case2E
		}
	}

	return Case2F
}
