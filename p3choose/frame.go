package p3choose

// vertexLoc tracks one vertex's remaining unabsorbed neighbor arc (the
// half-open range [NbFirst, NbLast] of its rotation still facing the
// unfinished part of the triangulation) and the face-fan it currently
// belongs to (Mark).
type vertexLoc struct {
	NbFirst uint32
	NbLast  uint32
	Mark    uint32
}

// Frame names the three vertices anchoring one in-progress fan: X and Y are
// the fan's two known-colored boundary vertices, Z is the vertex currently
// being walked around. Each carries its own vertexLoc shadow (XLoc/YLoc/
// ZLoc) because a vertex that becomes X, Y, or Z temporarily borrows frame
// storage for its loc instead of the shared per-vertex table — see vloc.
type Frame struct {
	X, Y, Z          uint32
	XLoc, YLoc, ZLoc vertexLoc
}

// vloc returns the live vertexLoc for v under frame: frame.X/Y/Z shadow the
// shared per-vertex table while they hold that role, so callers must always
// go through vloc rather than indexing ctx.vertices directly whenever v
// might be one of frame's three named vertices.
func vloc(ctx *Ctx, frame *Frame, v uint32) *vertexLoc {
	if v == frame.X {
		return &frame.XLoc
	}
	if v == frame.Y {
		return &frame.YLoc
	}
	if v == frame.Z {
		return &frame.ZLoc
	}
	return &ctx.vertices[v].loc
}
