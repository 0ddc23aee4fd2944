package p3choose

import (
	"runtime"
	"sync/atomic"

	"github.com/katalvlaran/lvplane/color"
	"github.com/katalvlaran/lvplane/core"
	"github.com/katalvlaran/lvplane/workerpool"
)

const (
	localFrameCap = 16
	markBlockSize = 64
)

// spinlock is the same minimal test-and-set lock p3color's
// parallel driver uses to guard its shared frame pool.
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

// markSet hands out fresh marks from a per-goroutine block of markBlockSize,
// refilling from ctx.nextMark only when the block is exhausted: this turns
// what would otherwise be one atomic increment per mark into one atomic
// increment per 64 marks.
type markSet struct {
	next, final uint32
}

func (ms *markSet) draw(ctx *parallelCtx) uint32 {
	if ms.next == ms.final {
		newVal := ctx.nextMark.Add(markBlockSize)
		ms.next = newVal - markBlockSize
		ms.final = ms.next + markBlockSize
	}
	m := ms.next
	ms.next++
	return m
}

// poolEntry is one blocked-or-ready frame: a vertex whose list isn't down to
// one color yet cannot safely resume its frame, so the frame is parked here
// with parent pointing to the next entry in that vertex's wait chain (0
// meaning none, matching the 1-based entryIndex convention below).
type poolEntry struct {
	frame  Frame
	parent uint32
}

// entryPool is a free-list-backed arena of poolEntry; every access happens
// while parallelCtx.lock is held, so it needs no internal synchronization.
type entryPool struct {
	entries []poolEntry
	free    []uint32
	used    int
}

func (p *entryPool) create(e poolEntry) uint32 {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.entries[idx] = e
		p.used++
		return idx
	}
	idx := uint32(len(p.entries))
	p.entries = append(p.entries, e)
	p.used++
	return idx
}

func (p *entryPool) get(idx uint32) *poolEntry { return &p.entries[idx] }

func (p *entryPool) delete(idx uint32) {
	p.free = append(p.free, idx)
	p.used--
}

// parallelVertexState extends vertexState with entryIndex: 0 means no frame
// is waiting on this vertex's list to settle to one color; otherwise it is
// 1 + the pool index of the head of a singly-linked chain of waiting
// entries (walked via poolEntry.parent).
type parallelVertexState struct {
	loc        vertexLoc
	colors     color.List
	entryIndex uint32
}

// parallelCtx is the state shared by every worker goroutine.
type parallelCtx struct {
	graph         core.GraphAug
	vertices      []parallelVertexState
	marks         []uint32
	pool          entryPool
	validEntries  []uint32
	validLen      atomic.Int64
	framesActive  atomic.Int32
	threadsActive atomic.Int32
	nextMark      atomic.Uint32
	lock          spinlock
}

func newParallelCtx(g core.GraphAug, lists []color.List, cwiseOuterFace []uint32, nthreads int) *parallelCtx {
	n := g.NumVertices()
	ctx := &parallelCtx{
		graph:        g,
		vertices:     make([]parallelVertexState, n),
		marks:        make([]uint32, nthreads*markBlockSize+(3*n-6)+1),
		validEntries: make([]uint32, 0, 3*n-6),
	}
	ctx.pool.entries = make([]poolEntry, 0, 3*n-6)
	ctx.nextMark.Store(1)

	for v := 0; v < n; v++ {
		ctx.vertices[v].colors = lists[v]
	}
	for i := range ctx.marks {
		ctx.marks[i] = uint32(i)
	}

	faceMark := ctx.nextMark.Add(1) - 1

	u := cwiseOuterFace[len(cwiseOuterFace)-1]
	for i := 0; i < len(cwiseOuterFace); i++ {
		v := cwiseOuterFace[i]

		vuIndex := g.AugNeighborIndex(v, u)
		uvIndex := g.Neighbor(v, vuIndex).BackIndex

		ctx.vertices[v].loc.NbFirst = vuIndex
		ctx.vertices[u].loc.NbLast = uvIndex
		ctx.vertices[v].loc.Mark = faceMark

		u = v
	}

	xyv := cwiseOuterFace[0]
	xyvLoc := &ctx.vertices[xyv].loc
	xyvLoc.Mark = ctx.nextMark.Add(1) - 1

	xyvColors := &ctx.vertices[xyv].colors
	if xyvColors.Len == 0 {
		panic("p3choose: newParallelCtx: outer-face vertex has an empty list")
	}
	xyvColors.Len = 1

	idx := ctx.pool.create(poolEntry{frame: Frame{
		X: xyv, Y: xyv, Z: xyv,
		XLoc: *xyvLoc,
	}})
	ctx.validEntries = append(ctx.validEntries, idx)
	ctx.validLen.Store(1)

	return ctx
}

func vlocP(ctx *parallelCtx, frame *Frame, v uint32) *vertexLoc {
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

func (ctx *parallelCtx) popShared(local *[]Frame) {
	ctx.framesActive.Add(-1)
	for {
		if ctx.validLen.Load() > 0 || ctx.framesActive.Load() == 0 {
			ctx.lock.Lock()
			available := len(ctx.validEntries)
			if available > 0 {
				moved := localFrameCap / 2
				if moved > available {
					moved = available
				}
				base := available - moved
				for i := 0; i < moved; i++ {
					entryIdx := ctx.validEntries[base+i]
					*local = append(*local, ctx.pool.get(entryIdx).frame)
					ctx.pool.delete(entryIdx)
				}
				ctx.validEntries = ctx.validEntries[:base]
				ctx.validLen.Store(int64(len(ctx.validEntries)))
				ctx.framesActive.Add(1)
				ctx.lock.Unlock()
				return
			}
			if ctx.pool.used == 0 && ctx.framesActive.Load() == 0 {
				ctx.lock.Unlock()
				return
			}
			ctx.lock.Unlock()
		}
		runtime.Gosched()
	}
}

// pushEntries is the frame-step epilogue: it decides whether v and/or u's
// wait chains can now run (because their lists just settled to one color),
// whether the freshly produced child frame must instead block on v's list,
// and spills local's overflow to the shared pool when local is full.
func (ctx *parallelCtx) pushEntries(local *[]Frame, v uint32, maybeFrame *Frame, u uint32) {
	vInfo := &ctx.vertices[v]
	uInfo := &ctx.vertices[u]

	vPush := vInfo.entryIndex != 0 && vInfo.colors.Len == 1
	uPush := v != u && uInfo.entryIndex != 0 && uInfo.colors.Len == 1
	frameWait := maybeFrame != nil && vInfo.colors.Len != 1

	if vPush || uPush || frameWait || len(*local) == cap(*local) {
		ctx.lock.Lock()

		for len(*local) > cap(*local)/2 {
			f := (*local)[len(*local)-1]
			*local = (*local)[:len(*local)-1]
			idx := ctx.pool.create(poolEntry{frame: f})
			ctx.validEntries = append(ctx.validEntries, idx)
		}

		if vPush {
			for vInfo.entryIndex != 0 {
				idx := vInfo.entryIndex - 1
				ctx.validEntries = append(ctx.validEntries, idx)
				vInfo.entryIndex = ctx.pool.get(idx).parent
			}
		}
		if uPush {
			for uInfo.entryIndex != 0 {
				idx := uInfo.entryIndex - 1
				ctx.validEntries = append(ctx.validEntries, idx)
				uInfo.entryIndex = ctx.pool.get(idx).parent
			}
		}
		if frameWait {
			idx := ctx.pool.create(poolEntry{frame: *maybeFrame, parent: vInfo.entryIndex})
			vInfo.entryIndex = idx + 1
		}

		ctx.validLen.Store(int64(len(ctx.validEntries)))
		ctx.lock.Unlock()
	}

	if maybeFrame != nil && !frameWait {
		*local = append(*local, *maybeFrame)
	}
}

// frameStep runs the same fan-walk logic as the sequential driver's
// frameStep, except it draws marks from a per-goroutine markSet instead of
// a bare counter, and every branch that would mutate v's list ends by
// asking pushEntries whether that settles a vertex some other frame is
// waiting on.
//
// One branch's push shape differs from the sequential driver on purpose:
// the final (ColorDifferently) case here pushes {x: frame.X, y: v, z:
// frame.X, ...} rather than sequential's {x: v, y: frame.Y, z: frame.Z,
// ...}. Both splits are valid fan decompositions; this one lets v's sub-fan
// proceed independently of frame.X's, which matters once the two can run on
// different goroutines.
func (ctx *parallelCtx) frameStep(local *[]Frame, ms *markSet, frame *Frame) bool {
	zLoc := vlocP(ctx, frame, frame.Z)
	zColors := &ctx.vertices[frame.Z].colors
	zColor := zColors.Data[0]

	zuIndex := zLoc.NbFirst
	zu := ctx.graph.Neighbor(frame.Z, zuIndex)
	u := zu.Vertex
	uLoc := vlocP(ctx, frame, u)

	if zuIndex == zLoc.NbLast {
		if frame.X == frame.Y {
			color.ColorDifferently(&ctx.vertices[u].colors, zColor)
			ctx.pushEntries(local, u, nil, u)
		}
		return true
	}

	if u == frame.Y {
		frame.XLoc, frame.YLoc = frame.YLoc, frame.XLoc
		frame.Y = frame.X
		frame.X = u
		frame.Z = u

		frame.XLoc.Mark = ms.draw(ctx)
		frame.YLoc.Mark = frame.XLoc.Mark

		return false
	}

	uLoc.NbLast = ctx.graph.Prev(u, uLoc.NbLast)
	zLoc.NbFirst = ctx.graph.Next(frame.Z, zLoc.NbFirst)

	uColored := false

	if frame.Z == frame.X {
		color.ColorDifferently(&ctx.vertices[u].colors, zColor)
		uColored = true

		if frame.Z == frame.Y {
			frame.YLoc = frame.XLoc
		} else {
			frame.ZLoc = frame.XLoc
		}

		frame.X = u
		frame.XLoc = *uLoc
		frame.XLoc.Mark = ms.draw(ctx)

		zLoc = vlocP(ctx, frame, frame.Z)
	}

	zvIndex := ctx.graph.Next(frame.Z, zuIndex)
	zv := ctx.graph.Neighbor(frame.Z, zvIndex)
	v := zv.Vertex
	vLoc := vlocP(ctx, frame, v)
	vColors := &ctx.vertices[v].colors

	var pushed *Frame

	switch {
	case vLoc.Mark == 0:
		*vLoc = vertexLoc{
			Mark:    frame.XLoc.Mark,
			NbFirst: ctx.graph.Next(v, zv.BackIndex),
			NbLast:  zv.BackIndex,
		}
		color.RemoveColor(vColors, zColor)

	case vLoc.Mark == frame.XLoc.Mark:
		if zvIndex == zLoc.NbLast {
			vLoc.NbFirst = ctx.graph.Next(v, zv.BackIndex)
			vLoc.Mark = ms.draw(ctx)
			frame.Y = frame.X
			frame.Z = frame.X
		} else {
			newMark := ms.draw(ctx)
			nf := Frame{
				X: v, Y: v, Z: v,
				XLoc: vertexLoc{
					Mark:    newMark,
					NbFirst: ctx.graph.Next(v, zv.BackIndex),
					NbLast:  vLoc.NbLast,
				},
			}
			pushed = &nf
			vLoc.NbLast = zv.BackIndex

			if v == frame.X {
				vLoc.Mark = ms.draw(ctx)
			}
		}

	case ctx.marks[vLoc.Mark] == frame.YLoc.Mark:
		if vLoc.NbFirst != zv.BackIndex {
			newMark := ms.draw(ctx)
			nf := Frame{
				X: v, Y: frame.Z, Z: v,
				XLoc: vertexLoc{
					Mark:    newMark,
					NbFirst: vLoc.NbFirst,
					NbLast:  zv.BackIndex,
				},
				YLoc: vertexLoc{
					Mark:    newMark,
					NbFirst: zvIndex,
					NbLast:  zLoc.NbLast,
				},
			}
			pushed = &nf
		}

		vLoc.NbFirst = ctx.graph.Next(v, zv.BackIndex)

		if color.HasColor(vColors, zColor) {
			if vColors.Len > 1 {
				vColors.Data[0] = zColor
				vColors.Len = 1
			}
			frame.Z = v
			frame.ZLoc = *vLoc
		} else {
			ctx.marks[frame.XLoc.Mark] = frame.YLoc.Mark
			frame.Z = frame.X
		}

	default:
		color.ColorDifferently(vColors, zColor)
		if vLoc.NbFirst != zv.BackIndex {
			nf := Frame{
				X: frame.X, Y: v, Z: frame.X,
				XLoc: frame.XLoc,
				YLoc: vertexLoc{
					Mark:    frame.XLoc.Mark,
					NbFirst: ctx.graph.Next(v, zv.BackIndex),
					NbLast:  vLoc.NbLast,
				},
			}
			pushed = &nf

			vLoc.NbLast = zv.BackIndex
			frame.X = v
			frame.XLoc = *vLoc
			frame.XLoc.Mark = ms.draw(ctx)
		} else {
			vLoc.NbFirst = ctx.graph.Next(v, zv.BackIndex)
			vLoc.Mark = frame.XLoc.Mark
			frame.Y = v
			frame.YLoc = *vLoc

			frame.Z = frame.X
		}
	}

	pushTarget := v
	if uColored {
		pushTarget = u
	}
	ctx.pushEntries(local, v, pushed, pushTarget)

	return false
}

func (ctx *parallelCtx) worker(start, end uint32, out color.Coloring) {
	ctx.threadsActive.Add(1)
	ctx.framesActive.Add(1)

	local := make([]Frame, 0, localFrameCap)
	ms := &markSet{}

	ctx.popShared(&local)

	for len(local) > 0 {
		frame := local[len(local)-1]
		local = local[:len(local)-1]
		for !ctx.frameStep(&local, ms, &frame) {
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
		if ctx.vertices[v].colors.Len != 1 {
			panic("p3choose: worker: vertex left with an unresolved list")
		}
		out[v] = ctx.vertices[v].colors.Data[0]
	}
}

// ChooseParallel runs Hartman's list-coloring algorithm using nthreads jobs
// submitted to pool: overflow frames spill to a shared pool, and frames
// that would race a vertex whose list hasn't settled to one color yet are
// parked on that vertex's wait chain until the goroutine that settles it
// releases them. Callers own pool's lifetime and may reuse it across calls.
func ChooseParallel(g core.GraphAug, lists []color.List, cwiseOuterFace []uint32, pool *workerpool.Pool, nthreads int) color.Coloring {
	if nthreads < 1 {
		nthreads = 1
	}

	ctx := newParallelCtx(g, lists, cwiseOuterFace, nthreads)
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
