package pio

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/katalvlaran/lvplane/core"
)

// Wire header magics, little-endian 8-byte type tags.
const (
	typeAdj    uint64 = 0x0ad762af
	typeAdjAug uint64 = 0x0a8662af
)

func shortErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrShort
	}
	return err
}

func writeU64(w io.Writer, v uint64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readU64(r io.Reader) (uint64, error) {
	var v uint64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, shortErr(err)
	}
	return v, nil
}

func writeU32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readU32(r io.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, shortErr(err)
	}
	return v, nil
}

// Push writes g to w: header, then the adjacency slice, then the neighbor
// slice, each length-prefixed by an 8-byte little-endian element count.
func Push(w io.Writer, g core.Graph) error {
	if err := writeU64(w, typeAdj); err != nil {
		return err
	}
	if err := writeU64(w, uint64(len(g.Adj))); err != nil {
		return err
	}
	for _, a := range g.Adj {
		if err := writeU32(w, a.Index); err != nil {
			return err
		}
		if err := writeU32(w, a.Len); err != nil {
			return err
		}
	}
	if err := writeU64(w, uint64(len(g.Nb))); err != nil {
		return err
	}
	for _, u := range g.Nb {
		if err := writeU32(w, u); err != nil {
			return err
		}
	}
	return nil
}

// Pop reads a Graph from r. It returns ErrMismatch if the header names the
// augmented type, and ErrShort if the stream is truncated.
func Pop(r io.Reader) (core.Graph, error) {
	kind, err := readU64(r)
	if err != nil {
		return core.Graph{}, err
	}
	if kind != typeAdj {
		return core.Graph{}, ErrMismatch
	}

	adjLen, err := readU64(r)
	if err != nil {
		return core.Graph{}, err
	}
	adj := make([]core.Adj, adjLen)
	for i := range adj {
		index, err := readU32(r)
		if err != nil {
			return core.Graph{}, err
		}
		length, err := readU32(r)
		if err != nil {
			return core.Graph{}, err
		}
		adj[i] = core.Adj{Index: index, Len: length}
	}

	nbLen, err := readU64(r)
	if err != nil {
		return core.Graph{}, err
	}
	nb := make([]uint32, nbLen)
	for i := range nb {
		u, err := readU32(r)
		if err != nil {
			return core.Graph{}, err
		}
		nb[i] = u
	}

	return core.Graph{Adj: adj, Nb: nb}, nil
}

// PushAug writes g to w in the augmented wire format: identical shape to
// Push, except each neighbor record also carries its back-index.
func PushAug(w io.Writer, g core.GraphAug) error {
	if err := writeU64(w, typeAdjAug); err != nil {
		return err
	}
	if err := writeU64(w, uint64(len(g.Adj))); err != nil {
		return err
	}
	for _, a := range g.Adj {
		if err := writeU32(w, a.Index); err != nil {
			return err
		}
		if err := writeU32(w, a.Len); err != nil {
			return err
		}
	}
	if err := writeU64(w, uint64(len(g.Nb))); err != nil {
		return err
	}
	for _, nb := range g.Nb {
		if err := writeU32(w, nb.Vertex); err != nil {
			return err
		}
		if err := writeU32(w, nb.BackIndex); err != nil {
			return err
		}
	}
	return nil
}

// PopAug reads a GraphAug from r. It returns ErrMismatch if the header names
// the unaugmented type, and ErrShort if the stream is truncated.
func PopAug(r io.Reader) (core.GraphAug, error) {
	kind, err := readU64(r)
	if err != nil {
		return core.GraphAug{}, err
	}
	if kind != typeAdjAug {
		return core.GraphAug{}, ErrMismatch
	}

	adjLen, err := readU64(r)
	if err != nil {
		return core.GraphAug{}, err
	}
	adj := make([]core.Adj, adjLen)
	for i := range adj {
		index, err := readU32(r)
		if err != nil {
			return core.GraphAug{}, err
		}
		length, err := readU32(r)
		if err != nil {
			return core.GraphAug{}, err
		}
		adj[i] = core.Adj{Index: index, Len: length}
	}

	nbLen, err := readU64(r)
	if err != nil {
		return core.GraphAug{}, err
	}
	nb := make([]core.AugNb, nbLen)
	for i := range nb {
		vertex, err := readU32(r)
		if err != nil {
			return core.GraphAug{}, err
		}
		back, err := readU32(r)
		if err != nil {
			return core.GraphAug{}, err
		}
		nb[i] = core.AugNb{Vertex: vertex, BackIndex: back}
	}

	return core.GraphAug{Adj: adj, Nb: nb}, nil
}

// Validate reports whether g's adjacency runs stay within Nb and every
// neighbor vertex id is in range. It does not trace faces; core.PlaneValidate
// is the stronger embedding check.
func Validate(g core.Graph) bool {
	n := uint32(len(g.Adj))
	nbLen := uint32(len(g.Nb))
	for v := uint32(0); v < n; v++ {
		a := g.Adj[v]
		for i := uint32(0); i < a.Len; i++ {
			if a.Index+i >= nbLen {
				return false
			}
			if g.Nb[a.Index+i] >= n {
				return false
			}
		}
	}
	return true
}

// ValidateAug reports whether g's adjacency runs stay within Nb, every
// neighbor vertex id is in range, and every back-index is reciprocal:
// nb[adj(v).Index+i] = (u, j) implies nb[adj(u).Index+j].Vertex == v.
func ValidateAug(g core.GraphAug) bool {
	n := uint32(len(g.Adj))
	nbLen := uint32(len(g.Nb))
	for v := uint32(0); v < n; v++ {
		a := g.Adj[v]
		for i := uint32(0); i < a.Len; i++ {
			if a.Index+i >= nbLen {
				return false
			}
			vu := g.Nb[a.Index+i]
			if vu.Vertex >= n {
				return false
			}
			uAdj := g.Adj[vu.Vertex]
			if uAdj.Index+vu.BackIndex >= nbLen {
				return false
			}
			uv := g.Nb[uAdj.Index+vu.BackIndex]
			if uv.Vertex != v {
				return false
			}
		}
	}
	return true
}
