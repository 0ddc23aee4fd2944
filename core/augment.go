package core

// Augment builds a GraphAug with the same vertex/neighbor structure as g and
// correct BackIndex fields, in O(|V|+|E|).
//
// Algorithm: for every directed half-edge (v, i) -> u, record
// {vertex: v, backIndex: i} against u's work list. Scanning vertices in
// decreasing order, each entry in v's work list is cross-wired against the
// tail entry of u's work list — the decreasing scan guarantees every edge is
// finalized exactly once, since by the time vertex v is processed every
// higher-numbered vertex's work list has already been drained down to the
// entries that originated from v or below.
func Augment(g Graph) GraphAug {
	aug := GraphAug{
		Adj: make([]Adj, len(g.Adj)),
		Nb:  make([]AugNb, len(g.Nb)),
	}
	copy(aug.Adj, g.Adj)
	for i, u := range g.Nb {
		aug.Nb[i] = AugNb{Vertex: u}
	}

	workLists := make([][]AugNb, len(g.Adj))
	for v, a := range g.Adj {
		workLists[v] = make([]AugNb, 0, a.Len)
	}

	for v := uint32(0); v < uint32(len(g.Adj)); v++ {
		vAdj := g.Adj[v]
		for i := uint32(0); i < vAdj.Len; i++ {
			u := g.Nb[vAdj.Index+i]
			workLists[u] = append(workLists[u], AugNb{Vertex: v, BackIndex: i})
		}
	}

	for k := len(g.Adj); k > 0; k-- {
		v := uint32(k - 1)
		vWork := workLists[v]
		for _, node := range vWork {
			u := node.Vertex
			uWork := workLists[u]
			uNode := uWork[len(uWork)-1]

			aug.Nb[aug.Adj[v].Index+uNode.BackIndex].BackIndex = node.BackIndex
			aug.Nb[aug.Adj[u].Index+node.BackIndex].BackIndex = uNode.BackIndex

			workLists[u] = uWork[:len(uWork)-1]
		}
		workLists[v] = nil
	}

	return aug
}
