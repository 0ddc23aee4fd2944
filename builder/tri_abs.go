package builder

import (
	"github.com/katalvlaran/lvplane/core"
)

type absFace struct {
	vertices  [3]uint32
	neighbors [3]uint32
}

// GenerateAbs builds a random plane triangulation purely combinatorially:
// vertices are inserted one at a time into a random face of the current
// mesh, splitting it into three, and then a probability-driven number of
// the three new edges (0, 1, or 2, depending on how many of cfg.flipProb's
// two thresholds a single uniform draw exceeds) are flipped with their
// neighboring face.
//
// Unlike Generate, no point embedding is produced or consulted, so there is
// no geometric admissibility gate on a flip, only the double-edge guard
// that keeps two new faces from sharing both non-v vertices.
func GenerateAbs(size uint32, opts ...Option) (core.Graph, error) {
	cfg := newConfig(opts...)
	if size < 3 {
		return core.Graph{}, builderErrorf("GenerateAbs", ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return core.Graph{}, builderErrorf("GenerateAbs", ErrNeedRandSource)
	}
	if cfg.flipProb[0] < 0 || cfg.flipProb[0] > 1 || cfg.flipProb[1] < 0 || cfg.flipProb[1] > 1 {
		return core.Graph{}, builderErrorf("GenerateAbs", ErrInvalidProbability)
	}

	graph := core.NewGraph(int(size), 6*int(size)-12)

	faces := make([]absFace, 0, 2*int(size)-4)
	faces = append(faces,
		absFace{vertices: [3]uint32{0, 2, 1}, neighbors: [3]uint32{1, 1, 1}},
		absFace{vertices: [3]uint32{0, 1, 2}, neighbors: [3]uint32{0, 0, 0}},
	)

	for v := uint32(3); v < size; v++ {
		faceIndex := 1 + uint32(cfg.rng.Intn(len(faces)-1))

		r := cfg.rng.Float32()
		edgeFlips := 0
		if r >= cfg.flipProb[0] {
			edgeFlips++
		}
		if r >= cfg.flipProb[1] {
			edgeFlips++
		}
		flipStart := uint32(cfg.rng.Intn(3))

		ogFace := faces[faceIndex]

		faceIndices := [3]uint32{
			faceIndex,
			uint32(len(faces)),
			uint32(len(faces)) + 1,
		}
		faces = append(faces, absFace{}, absFace{})

		newFaces := [3]*absFace{
			&faces[faceIndices[0]],
			&faces[faceIndices[1]],
			&faces[faceIndices[2]],
		}
		for i := 0; i < 3; i++ {
			*newFaces[i] = absFace{
				vertices: [3]uint32{
					v,
					ogFace.vertices[i],
					ogFace.vertices[(i+1)%3],
				},
				neighbors: [3]uint32{
					faceIndices[(i+2)%3],
					ogFace.neighbors[i],
					faceIndices[(i+1)%3],
				},
			}
		}

		var neighborFaces [3]*absFace
		var neighborEdgeIndices [3]int
		var neighborOppositeVertices [3]uint32
		for i := 0; i < 3; i++ {
			u := ogFace.vertices[(i+1)%3]
			neighborFaces[i] = &faces[ogFace.neighbors[i]]
			j := 0
			for ; j < 3; j++ {
				if neighborFaces[i].vertices[j] == u {
					neighborEdgeIndices[i] = j
					neighborOppositeVertices[i] = neighborFaces[i].vertices[(j+2)%3]
					neighborFaces[i].neighbors[j] = faceIndices[i]
					break
				}
			}
		}

		if edgeFlips == 2 &&
			neighborOppositeVertices[flipStart] == neighborOppositeVertices[(flipStart+1)%3] {
			if neighborOppositeVertices[flipStart] == neighborOppositeVertices[(flipStart+2)%3] {
				edgeFlips--
			} else {
				flipStart += uint32(1 + cfg.rng.Intn(2))
			}
		}

		for i := 0; i < edgeFlips; i++ {
			flipIndex := (flipStart + uint32(i)) % 3
			if ogFace.neighbors[flipIndex] == 0 {
				// never flip an edge of the outer triangle
				continue
			}

			nflipIndex := neighborEdgeIndices[flipIndex]

			face := newFaces[flipIndex]
			neighbor := neighborFaces[flipIndex]

			{
				faceNextNeighbor := newFaces[(flipIndex+1)%3]
				j := 0
				for ; j < 3; j++ {
					if faceNextNeighbor.vertices[j] == v {
						break
					}
				}
				faceNextNeighbor.neighbors[j] = ogFace.neighbors[flipIndex]
			}
			{
				neighborPrevNeighbor := &faces[neighbor.neighbors[(nflipIndex+1)%3]]
				j := 0
				for ; j < 3; j++ {
					if neighborPrevNeighbor.vertices[j] == neighborOppositeVertices[flipIndex] {
						break
					}
				}
				neighborPrevNeighbor.neighbors[j] = faceIndices[flipIndex]
			}

			face.vertices[2] = neighbor.vertices[(nflipIndex+2)%3]
			neighbor.vertices[(nflipIndex+1)%3] = v

			face.neighbors[1] = neighbor.neighbors[(nflipIndex+1)%3]
			face.neighbors[2] = ogFace.neighbors[flipIndex]

			neighbor.neighbors[nflipIndex] = faceIndices[(flipIndex+1)%3]
			neighbor.neighbors[(nflipIndex+1)%3] = faceIndices[flipIndex]
		}
	}

	labels := make([]uint32, size)
	for v := range labels {
		labels[v] = uint32(v)
	}
	for i := len(labels); i > 4; i-- {
		j := 3 + cfg.rng.Intn(i-4)
		labels[i-1], labels[j] = labels[j], labels[i-1]
	}

	nbIndex := uint32(0)
	for i := range faces {
		face := &faces[i]
		for j := 0; j < 3; j++ {
			v := face.vertices[j]
			vl := labels[v]
			if graph.Adj[vl].Len != 0 {
				continue
			}

			graph.Adj[vl].Index = nbIndex
			graph.Nb[nbIndex] = labels[face.vertices[(j+1)%3]]
			nbIndex++

			faceIndex := face.neighbors[j]
			for faceIndex != uint32(i) {
				curFace := &faces[faceIndex]
				k := 0
				for ; k < 3; k++ {
					if curFace.vertices[k] == v {
						break
					}
				}
				graph.Nb[nbIndex] = labels[curFace.vertices[(k+1)%3]]
				nbIndex++
				faceIndex = curFace.neighbors[k]
			}

			graph.Adj[vl].Len = nbIndex - graph.Adj[vl].Index
		}
	}

	return graph, nil
}
