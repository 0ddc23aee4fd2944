package p3color

// Frame is one call-stack activation of the face-tracing state machine. u
// is the vertex currently being walked around; x is the first endpoint on
// the not-yet-colored side of the strip; y is the far boundary of the
// current strip; z is the last colored vertex on the path being extended.
// FaceMark stamps vertices discovered by this frame's generation (negative,
// decreasing per spawned child so inherited vertices carry a distinguishable
// sentinel).
//
// PColor is the color of the heavy boundary path being extended; QColor is
// the color of the far boundary; the third color is PColor^QColor.
type Frame struct {
	U           uint32
	UNbFirst    uint32
	X           uint32
	XNbFirst    uint32
	Y           uint32
	Z           uint32
	EdgeIndex   uint32
	FaceMark    int32
	QColor      uint8
	PColor      uint8
	AbovePath   bool
	LastColored bool
}
