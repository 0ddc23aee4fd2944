package color

// Coloring is a byte per vertex; 0 means uncolored. For every color c > 0,
// the subgraph induced by {v : Coloring[v] == c} must, in a valid path
// coloring, have every component a simple path.
type Coloring []uint8

// List is a small array of up to 3 candidate colors for one vertex, used by
// p3choose. A finished list-coloring always has Len == 1, with Data[0] being
// the chosen color, which must have been present in the vertex's original
// list.
type List struct {
	Len  uint8
	Data [3]uint8
}

// NewList returns a List containing exactly the given colors, in order.
func NewList(colors ...uint8) List {
	if len(colors) > 3 {
		panic("color: NewList: at most 3 colors")
	}
	var l List
	l.Len = uint8(len(colors))
	copy(l.Data[:], colors)
	return l
}

// HasColor reports whether c appears in l.
func HasColor(l *List, c uint8) bool {
	for i := uint8(0); i < l.Len; i++ {
		if l.Data[i] == c {
			return true
		}
	}
	return false
}

// RemoveColor deletes c from l in place. It panics if l would become empty
// (the contract requires |l| > 1 before removal).
func RemoveColor(l *List, c uint8) {
	for i := uint8(0); i < l.Len; i++ {
		if l.Data[i] == c {
			if l.Len <= 1 {
				panic("color: RemoveColor: list would become empty")
			}
			l.Data[i] = l.Data[l.Len-1]
			l.Len--
			return
		}
	}
}

// ColorDifferently collapses l to a single element distinct from c. It
// panics if every element of l equals c.
func ColorDifferently(l *List, c uint8) {
	for i := uint8(0); i < l.Len; i++ {
		if l.Data[i] != c {
			l.Data[0] = l.Data[i]
			l.Len = 1
			return
		}
	}
	panic("color: ColorDifferently: no color distinct from c")
}
