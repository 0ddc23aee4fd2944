package p3color

import (
	"runtime"
	"sync/atomic"

	"github.com/katalvlaran/lvplane/color"
	"github.com/katalvlaran/lvplane/core"
	"github.com/katalvlaran/lvplane/workerpool"
)

const localFrameCap = 16

// spinlock is a minimal test-and-set lock (a CompareAndSwap loop that yields
// between attempts): cheap to acquire when
// uncontended, which is the common case guarding the shared frame pool
// below (most pushes/pops happen against a worker's local buffer).
type spinlock struct {
	held atomic.Bool
}

func (s *spinlock) Lock() {
	for !s.held.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

func (s *spinlock) Unlock() {
	s.held.Store(false)
}

// parallelCtx is the state shared by every worker goroutine: the graph
// (read-only), each vertex's mark (left unsynchronized), and a shared pool
// of overflow
// frames guarded by lock with an atomically tracked length.
type parallelCtx struct {
	graph         core.Graph
	marks         []int32
	frames        []Frame
	framesLen     atomic.Int64
	framesActive  atomic.Int32
	threadsActive atomic.Int32
	lock          spinlock
}

func newParallelCtx(g core.Graph, p, q []uint32) *parallelCtx {
	p1 := p[0]
	q1 := q[0]

	ctx := &parallelCtx{
		graph:  g,
		marks:  make([]int32, g.NumVertices()),
		frames: make([]Frame, g.NumVertices()-2),
	}

	for _, v := range p {
		ctx.marks[v] = -1
	}
	ctx.marks[p1] = 1
	for _, v := range q {
		ctx.marks[v] = 2
	}

	seed := Frame{
		PColor:   3,
		QColor:   2,
		U:        p1,
		UNbFirst: g.NeighborIndex(p1, q1),
		X:        p1,
		Y:        p1,
		Z:        p1,
		FaceMark: -1,
	}
	ctx.frames[0] = seed
	ctx.framesLen.Store(1)

	return ctx
}

func (ctx *parallelCtx) pushLocal(local *[]Frame, frame Frame) {
	*local = append(*local, frame)
	if len(*local) == localFrameCap {
		half := localFrameCap / 2
		ctx.lock.Lock()
		idx := ctx.framesLen.Add(int64(half)) - int64(half)
		for i := 0; i < half; i++ {
			// pop from the back of local, LIFO
			ctx.frames[int(idx)+i] = (*local)[len(*local)-1]
			*local = (*local)[:len(*local)-1]
		}
		ctx.lock.Unlock()
	}
}

func (ctx *parallelCtx) popShared(local *[]Frame) {
	ctx.framesActive.Add(-1)
	for {
		if ctx.framesLen.Load() > 0 || ctx.framesActive.Load() == 0 {
			ctx.lock.Lock()
			available := ctx.framesLen.Load()
			if available != 0 {
				half := int64(localFrameCap / 2)
				moved := available
				if half < moved {
					moved = half
				}
				newLen := ctx.framesLen.Add(-moved)
				frameIndex := newLen
				for i := int64(0); i < moved; i++ {
					*local = append(*local, ctx.frames[frameIndex+i])
				}
				ctx.framesActive.Add(1)
				ctx.lock.Unlock()
				return
			}
			if ctx.framesActive.Load() == 0 {
				ctx.lock.Unlock()
				return
			}
			ctx.lock.Unlock()
		}
		for ctx.framesLen.Load() == 0 && ctx.framesActive.Load() > 0 {
			runtime.Gosched()
		}
	}
}

func (ctx *parallelCtx) frameStep(local *[]Frame, frame *Frame) bool {
	pathColor := frame.PColor ^ frame.QColor
	uDeg := ctx.graph.Degree(frame.U)

	if frame.EdgeIndex == uDeg {
		if frame.Y == frame.U {
			return true
		}
		if frame.X == frame.U {
			frame.X = frame.Y
		}
		frame.UNbFirst = nextNeighborIndex(ctx.graph, frame.Y, frame.U)
		frame.U = frame.Y
		frame.Z = frame.Y
		frame.EdgeIndex = 0
		frame.AbovePath = false
		frame.LastColored = false
		return false
	}

	nIndex := frame.UNbFirst + frame.EdgeIndex
	if nIndex >= uDeg {
		nIndex -= uDeg
	}
	n := ctx.graph.Neighbor(frame.U, nIndex)
	frame.EdgeIndex++

	switch {
	case frame.AbovePath:
		if ctx.marks[n] <= 0 {
			if frame.LastColored {
				frame.Z = n
				ctx.marks[n] = int32(frame.QColor)
			} else {
				ctx.marks[n] = frame.FaceMark - 1
			}
			frame.LastColored = false
		} else {
			frame.LastColored = true
			if frame.Z != frame.U {
				ctx.pushLocal(local, Frame{
					PColor:   pathColor,
					QColor:   frame.PColor,
					U:        frame.Z,
					UNbFirst: nextNeighborIndex(ctx.graph, frame.Z, frame.U),
					X:        frame.Z,
					Y:        frame.Z,
					Z:        frame.Z,
					FaceMark: frame.FaceMark - 1,
				})
				frame.Z = frame.U
			}
		}

	case n != frame.X:
		switch {
		case ctx.marks[n] > 0:
			if ctx.marks[n] == int32(frame.PColor) {
				frame.AbovePath = true
				frame.LastColored = true
			}
			if frame.X != frame.U {
				ctx.pushLocal(local, Frame{
					PColor:   pathColor,
					QColor:   frame.QColor,
					U:        frame.X,
					UNbFirst: frame.XNbFirst,
					X:        frame.X,
					Y:        frame.X,
					Z:        frame.X,
					FaceMark: frame.FaceMark - 1,
				})
				frame.X = frame.U
			}
		case ctx.marks[n] == frame.FaceMark:
			ctx.marks[n] = int32(pathColor)
			frame.Y = n
			frame.AbovePath = true
		default:
			if ctx.marks[n] <= 0 {
				ctx.marks[n] = frame.FaceMark - 1
			}
			if frame.X == frame.U {
				frame.X = n
				frame.XNbFirst = nextNeighborIndex(ctx.graph, n, frame.U)
				ctx.marks[n] = int32(frame.PColor)
			}
		}
	}

	return false
}

func (ctx *parallelCtx) worker(start, end uint32, out color.Coloring) {
	ctx.threadsActive.Add(1)
	ctx.framesActive.Add(1)

	local := make([]Frame, 0, localFrameCap)
	ctx.popShared(&local)

	for len(local) > 0 {
		frame := local[len(local)-1]
		local = local[:len(local)-1]
		for !ctx.frameStep(&local, &frame) {
		}
		if len(local) == 0 {
			ctx.popShared(&local)
		}
	}

	ctx.threadsActive.Add(-1)
	for ctx.threadsActive.Load() != 0 {
		runtime.Gosched()
	}

	for v := start; v != end; v++ {
		m := ctx.marks[v]
		if m <= 0 || m > 3 {
			panic("p3color: worker: vertex left uncolored")
		}
		out[v] = uint8(m)
	}
}

// ColorParallel runs Poh's algorithm using nthreads jobs submitted to pool;
// each job steals overflow frames from a shared pool guarded by a spinlock.
// Callers own pool's lifetime and may reuse it across calls.
func ColorParallel(g core.Graph, p, q []uint32, pool *workerpool.Pool, nthreads int) color.Coloring {
	if nthreads < 1 {
		nthreads = 1
	}

	ctx := newParallelCtx(g, p, q)
	out := make(color.Coloring, g.NumVertices())

	n := g.NumVertices()
	chunkSize := n / nthreads

	for i := 0; i < nthreads; i++ {
		start := uint32(i * chunkSize)
		end := uint32((i + 1) * chunkSize)
		if i+1 == nthreads {
			end = uint32(n)
		}
		pool.Submit(func() {
			ctx.worker(start, end, out)
		})
	}
	pool.Wait()

	return out
}
