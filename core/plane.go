package core

// PlaneValidateAug reports whether aug represents a valid combinatorial
// embedding of a planar graph: every directed half-edge's face is traced
// exactly once, the edge count respects |E| <= 3|V|-6, and the resulting
// face count matches Euler's formula F = 2 + E - V.
//
// Algorithm: walk the face to the left of each half-edge by
// repeatedly crossing to the reverse half-edge's Next neighbor, marking
// half-edges visited along the way; a face closes when the walk returns to
// its starting half-edge. A single pass over all half-edges traces every
// face exactly once because each half-edge belongs to exactly one face walk.
func PlaneValidateAug(aug GraphAug) bool {
	n := aug.NumVertices()
	if n <= 1 {
		return true
	}

	visited := make([]bool, len(aug.Nb))
	vertices := uint32(n)
	edges := uint32(len(aug.Nb)) / 2
	if edges > 3*vertices-6 {
		return false
	}

	var faces uint32
	for v := uint32(0); v < vertices; v++ {
		vAdj := aug.Adj[v]
		for i := uint32(0); i < vAdj.Len; i++ {
			count := uint32(0)
			u := v
			uAdj := vAdj
			uwIndex := i
			uw := aug.Neighbor(u, uwIndex)

			for count < vertices && !visited[uAdj.Index+uwIndex] {
				count++
				visited[uAdj.Index+uwIndex] = true

				if uw.Vertex == v {
					break
				}

				u = uw.Vertex
				uAdj = aug.Adj[u]
				uwIndex = aug.Next(u, uw.BackIndex)
				uw = aug.Neighbor(u, uwIndex)
			}

			if count > 0 {
				if uw.Vertex != v {
					return false
				}
				if aug.Next(v, uw.BackIndex) != i {
					return false
				}
				faces++
			}
		}
	}

	for _, seen := range visited {
		if !seen {
			return false
		}
	}

	return faces == 2+edges-vertices
}

// PlaneValidate augments g and delegates to PlaneValidateAug.
func PlaneValidate(g Graph) bool {
	return PlaneValidateAug(Augment(g))
}
