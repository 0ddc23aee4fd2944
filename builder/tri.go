package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvplane/core"
	"github.com/katalvlaran/lvplane/geom"
)

// Face is one triangular face of the mesh TriCtx maintains: three vertices
// in cyclic order, the neighboring face across each edge (vertices[i],
// vertices[i+1]), a cached area score (twice the signed area for the
// initial faces, the faceAreaQuality product for faces made by a split or
// flip), and whether it has been retired from the valid-subdivision pool.
//
// Area is negative for the sentinel outer face.
type Face struct {
	Vertices  [3]uint32
	Neighbors [3]uint32
	Area      float32
	Invalid   bool
}

// TriCtx is the embedded triangulation-generator state machine: a growing
// point embedding, a face mesh, and a pool of faces still eligible for
// subdivision.
type TriCtx struct {
	embedding  []geom.Vec2
	cap        int
	faces      []Face
	validFaces []uint32
	activeFace uint32 // 0 means "pick next"; else faceIndex+1
	minArea    float32
	minCoeff   float32
	square     bool
}

// InitTri returns a TriCtx that will grow to size vertices. size must be at
// least 3 (4 for the square variant's outer face, but the fourth point is
// supplied internally).
func InitTri(size uint32, opts ...Option) *TriCtx {
	if size < 3 {
		panic("builder: InitTri: size must be >= 3")
	}
	cfg := newConfig(opts...)

	ctx := &TriCtx{
		cap:      int(size),
		minArea:  2.0 * cfg.minArea,
		minCoeff: cfg.minCoeff,
		square:   cfg.square,
	}
	ctx.embedding = make([]geom.Vec2, 0, size)
	ctx.faces = make([]Face, 0, 2*int(size)-4)
	ctx.validFaces = make([]uint32, 0, 2*int(size)-4)

	if !ctx.square {
		points := [3]geom.Vec2{
			{0, 1},
			{1, -1},
			{-1, -1},
		}
		for i := range points {
			points[i] = geom.Transform(cfg.trans, points[i])
			ctx.embedding = append(ctx.embedding, points[i])
		}
		area := geom.TriangleArea(ctx.embedding[0], ctx.embedding[1], ctx.embedding[2])

		ctx.faces = append(ctx.faces,
			Face{Vertices: [3]uint32{0, 2, 1}, Neighbors: [3]uint32{1, 1, 1}, Area: -1},
			Face{Vertices: [3]uint32{0, 1, 2}, Neighbors: [3]uint32{0, 0, 0}, Area: area},
		)
		ctx.validFaces = append(ctx.validFaces, 1)
	} else {
		points := [4]geom.Vec2{
			{-1, 1},
			{1, 1},
			{1, -1},
			{-1, -1},
		}
		for i := range points {
			points[i] = geom.Transform(cfg.trans, points[i])
			ctx.embedding = append(ctx.embedding, points[i])
		}
		area := geom.TriangleArea(ctx.embedding[0], ctx.embedding[1], ctx.embedding[2])

		ctx.faces = append(ctx.faces,
			Face{Vertices: [3]uint32{2, 1, 3}, Neighbors: [3]uint32{2, 1, 3}, Area: -1},
			Face{Vertices: [3]uint32{1, 0, 3}, Neighbors: [3]uint32{2, 3, 0}, Area: -1},
			Face{Vertices: [3]uint32{0, 1, 2}, Neighbors: [3]uint32{1, 0, 3}, Area: area},
			Face{Vertices: [3]uint32{0, 2, 3}, Neighbors: [3]uint32{2, 0, 1}, Area: area},
		)
		ctx.validFaces = append(ctx.validFaces, 2, 3)
	}

	return ctx
}

func (ctx *TriCtx) faceAreaQuality(v1, v2, v3 uint32) float32 {
	coords := [3]geom.Vec2{ctx.embedding[v1], ctx.embedding[v2], ctx.embedding[v3]}

	var maxSide2 float32
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		side := geom.Sub(coords[j], coords[i])
		d := geom.Dot(side, side)
		if d > maxSide2 {
			maxSide2 = d
		}
	}

	area := geom.TriangleArea(coords[0], coords[1], coords[2])
	return area * (2 * area / maxSide2)
}

// Step advances the generator by one admissible action and reports whether
// generation is finished: the embedding has reached its target size, or no
// face left in the valid pool is large enough to split.
func (ctx *TriCtx) Step(rng *rand.Rand) bool {
	if len(ctx.embedding) == ctx.cap {
		return true
	}

	if ctx.activeFace == 0 {
		tries := len(ctx.validFaces)
		for tries != 0 {
			idx := rng.Intn(len(ctx.validFaces))
			ctx.activeFace = ctx.validFaces[idx] + 1

			face := &ctx.faces[ctx.activeFace-1]
			if face.Area > 3*ctx.minArea {
				return false
			}

			ctx.validFaces[idx] = ctx.validFaces[len(ctx.validFaces)-1]
			ctx.validFaces = ctx.validFaces[:len(ctx.validFaces)-1]
			face.Invalid = true
			tries--
		}
		ctx.activeFace = 0
		return true
	}

	face := ctx.faces[ctx.activeFace-1]

	var faceCoords [3]geom.Vec2
	for i := 0; i < 3; i++ {
		faceCoords[i] = ctx.embedding[face.Vertices[i]]
	}

	minCoeff := ctx.minCoeff
	if alt := minCoeffConstant * float32(math.Sqrt(float64(3*ctx.minArea/face.Area))); alt > minCoeff {
		minCoeff = alt
	}
	coeff := [3]float32{minCoeff, minCoeff, minCoeff}

	remaining := float32(1)
	for i := 0; i < 3; i++ {
		remaining -= coeff[i]
	}
	for i := 0; i < 2; i++ {
		extra := rng.Float32() * remaining
		remaining -= extra
		coeff[i] += extra
	}
	coeff[2] += remaining

	var vpos geom.Vec2
	for i := 0; i < 3; i++ {
		vpos = geom.Add(vpos, geom.Scale(coeff[i], faceCoords[i]))
	}

	v := uint32(len(ctx.embedding))
	ctx.embedding = append(ctx.embedding, vpos)

	newFaceIndices := [3]uint32{
		ctx.activeFace - 1,
		uint32(len(ctx.faces)),
		uint32(len(ctx.faces)) + 1,
	}
	ctx.faces = append(ctx.faces, Face{}, Face{})
	ctx.validFaces = append(ctx.validFaces, newFaceIndices[1], newFaceIndices[2])

	for i := 0; i < 3; i++ {
		nexti := (i + 1) % 3
		previ := (i + 2) % 3

		nf := &ctx.faces[newFaceIndices[i]]
		nf.Vertices[0] = v
		nf.Vertices[1] = face.Vertices[i]
		nf.Vertices[2] = face.Vertices[nexti]

		nf.Neighbors[0] = newFaceIndices[previ]
		nf.Neighbors[1] = face.Neighbors[i]
		nf.Neighbors[2] = newFaceIndices[nexti]

		nf.Area = ctx.faceAreaQuality(nf.Vertices[0], nf.Vertices[1], nf.Vertices[2])
	}

	for i := 0; i < 3; i++ {
		neighbor := &ctx.faces[face.Neighbors[i]]
		endVertex := face.Vertices[(i+1)%3]

		j := 0
		for ; j < 3; j++ {
			if neighbor.Vertices[j] == endVertex {
				break
			}
		}
		neighbor.Neighbors[j] = newFaceIndices[i]
	}

	type neighborCandidate struct {
		neighborIndex   int
		vertexIndex     int
		newArea         float32
		newNeighborArea float32
	}
	var validNeighbors []neighborCandidate

	for i := 0; i < 3; i++ {
		neighbor := &ctx.faces[face.Neighbors[i]]
		if neighbor.Area < 0 {
			continue
		}

		j := (i + 1) % 3
		f1 := face.Vertices[i]
		f2 := face.Vertices[j]
		f1pos := ctx.embedding[f1]
		f2pos := ctx.embedding[f2]

		k := 0
		for ; k < 3; k++ {
			if neighbor.Vertices[k] != f1 && neighbor.Vertices[k] != f2 {
				break
			}
		}
		n := neighbor.Vertices[k]

		existingArea := ctx.faces[newFaceIndices[i]].Area
		existingNeighborArea := neighbor.Area
		minExisting := min32(existingArea, existingNeighborArea)

		newArea := ctx.faceAreaQuality(v, f1, n)
		newNeighborArea := ctx.faceAreaQuality(n, f2, v)
		minNew := min32(newArea, newNeighborArea)

		if minExisting >= minNew {
			continue
		}

		npos := ctx.embedding[n]
		vn := geom.Sub(npos, vpos)

		vf1 := geom.Sub(f1pos, vpos)
		perp1 := geom.Vec2{vf1[1], -vf1[0]}

		vf2 := geom.Sub(f2pos, vpos)
		perp2 := geom.Vec2{-vf2[1], vf2[0]}

		test1 := geom.Dot(vn, perp1)
		test2 := geom.Dot(vn, perp2)

		if test1 > 0 && test2 > 0 {
			validNeighbors = append(validNeighbors, neighborCandidate{
				neighborIndex:   i,
				vertexIndex:     k,
				newArea:         newArea,
				newNeighborArea: newNeighborArea,
			})
		}
	}

	for _, nc := range validNeighbors {
		newFaceIndex := newFaceIndices[nc.neighborIndex]
		newFace := &ctx.faces[newFaceIndex]

		neighborFaceIndex := newFace.Neighbors[1]
		neighborFace := &ctx.faces[neighborFaceIndex]

		ncur := nc.vertexIndex
		nnext := (ncur + 1) % 3
		nprev := (ncur + 2) % 3

		oldNeighborFace := *neighborFace

		neighborFace.Neighbors[nprev] = newFaceIndex
		neighborFace.Neighbors[nnext] = newFace.Neighbors[2]
		neighborFace.Vertices[nprev] = newFace.Vertices[0]
		neighborFace.Area = nc.newNeighborArea

		newFace.Neighbors[2] = newFace.Neighbors[1]
		newFace.Neighbors[1] = oldNeighborFace.Neighbors[nprev]
		newFace.Vertices[2] = oldNeighborFace.Vertices[ncur]
		newFace.Area = nc.newArea

		neighborPrevNeighbor := &ctx.faces[newFace.Neighbors[1]]
		j := 0
		for ; j < 3; j++ {
			if neighborPrevNeighbor.Vertices[j] == newFace.Vertices[2] {
				break
			}
		}
		neighborPrevNeighbor.Neighbors[j] = newFaceIndex

		newFaceNextNeighbor := &ctx.faces[neighborFace.Neighbors[nnext]]
		j = 0
		for ; j < 3; j++ {
			if newFaceNextNeighbor.Vertices[j] == newFace.Vertices[0] {
				break
			}
		}
		newFaceNextNeighbor.Neighbors[j] = neighborFaceIndex

		if neighborFace.Invalid {
			neighborFace.Invalid = false
			ctx.validFaces = append(ctx.validFaces, neighborFaceIndex)
		}
	}

	ctx.activeFace = 0
	return false
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Data materializes the grown mesh into a core.Graph plus its point
// embedding, walking the face ring around each vertex to build its
// rotational neighbor run. For the square-outer-face variant the internal
// 1-3 diagonal is suppressed.
func (ctx *TriCtx) Data() (core.Graph, []geom.Vec2) {
	n := len(ctx.embedding)
	// 6*n is a safe upper bound on the half-edge count (two per undirected
	// edge of a near-triangulation); Nb is truncated to the true count
	// below once every face ring has been walked.
	graph := core.NewGraph(n, 6*n)

	suppressed := func(u, v uint32) bool {
		if !ctx.square {
			return false
		}
		return (u == 1 && v == 3) || (u == 3 && v == 1)
	}

	nbIndex := uint32(0)
	for i := range ctx.faces {
		face := &ctx.faces[i]
		for j := 0; j < 3; j++ {
			v := face.Vertices[j]
			if graph.Adj[v].Len != 0 {
				continue
			}

			graph.Adj[v].Index = nbIndex

			u := face.Vertices[(j+1)%3]
			if !suppressed(u, v) {
				graph.Nb[nbIndex] = u
				nbIndex++
			}

			faceIndex := face.Neighbors[j]
			for faceIndex != uint32(i) {
				curFace := &ctx.faces[faceIndex]
				k := 0
				for ; k < 3; k++ {
					if curFace.Vertices[k] == v {
						break
					}
				}
				u := curFace.Vertices[(k+1)%3]
				if !suppressed(u, v) {
					graph.Nb[nbIndex] = u
					nbIndex++
				}
				faceIndex = curFace.Neighbors[k]
			}

			graph.Adj[v].Len = nbIndex - graph.Adj[v].Index
		}
	}

	graph.Nb = graph.Nb[:nbIndex]
	return graph, ctx.embedding
}

// Generate runs TriCtx to completion and returns the resulting
// triangulation and its point embedding.
func Generate(size uint32, opts ...Option) (core.Graph, []geom.Vec2, error) {
	cfg := newConfig(opts...)
	if size < 3 {
		return core.Graph{}, nil, builderErrorf("Generate", ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return core.Graph{}, nil, builderErrorf("Generate", ErrNeedRandSource)
	}

	ctx := InitTri(size, opts...)
	for !ctx.Step(cfg.rng) {
	}
	g, embedding := ctx.Data()
	return g, embedding, nil
}
