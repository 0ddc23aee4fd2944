package bfs

import "github.com/katalvlaran/lvplane/core"

// Ctx is the incremental BFS state machine. One Step advances by consuming
// one edge of the current vertex, or by dequeuing the next vertex once the
// current one is exhausted.
type Ctx struct {
	graph     core.Graph
	nodes     []TreeNode
	queue     []uint32
	qhead     int
	edgeIndex uint32
	vertex    uint32
	cfg       config
}

// Init returns a Ctx ready to run BFS from root over g.
func Init(g core.Graph, root uint32, opts ...Option) *Ctx {
	cfg := newConfig(opts)
	ctx := &Ctx{
		graph:  g,
		nodes:  make([]TreeNode, g.NumVertices()),
		queue:  make([]uint32, 0, g.NumVertices()),
		vertex: root,
		cfg:    cfg,
	}
	ctx.nodes[root].Parent = root + 1
	if cfg.onVisit != nil {
		cfg.onVisit(root)
	}
	return ctx
}

// Step advances the traversal by one edge or one vertex dequeue. It returns
// true once the traversal is complete.
func (ctx *Ctx) Step() bool {
	deg := ctx.graph.Degree(ctx.vertex)
	if ctx.edgeIndex == deg {
		if ctx.qhead == len(ctx.queue) {
			return true
		}
		ctx.vertex = ctx.queue[ctx.qhead]
		ctx.qhead++
		ctx.edgeIndex = 0
		return false
	}

	u := ctx.graph.Neighbor(ctx.vertex, ctx.edgeIndex)
	if ctx.nodes[u].Parent == 0 {
		ctx.queue = append(ctx.queue, u)
		ctx.nodes[u].Parent = ctx.vertex + 1
		ctx.nodes[u].Dist = ctx.nodes[ctx.vertex].Dist + 1
		if ctx.cfg.onVisit != nil {
			ctx.cfg.onVisit(u)
		}
	}
	ctx.edgeIndex++

	return false
}

// Tree returns the BFS tree accumulated so far.
func (ctx *Ctx) Tree() Tree {
	out := make(Tree, len(ctx.nodes))
	copy(out, ctx.nodes)
	return out
}

// Run computes the full BFS tree rooted at root in one call.
func Run(g core.Graph, root uint32, opts ...Option) Tree {
	ctx := Init(g, root, opts...)
	for !ctx.Step() {
	}
	return ctx.Tree()
}

// PathToRoot reconstructs the path from v back to tree's root, inclusive,
// ordered from v to root. It returns nil if v was never reached.
func PathToRoot(tree Tree, v uint32) []uint32 {
	if !Contains(tree, v) {
		return nil
	}

	path := make([]uint32, 0, len(tree))
	for {
		path = append(path, v)
		p := Parent(tree, v)
		if p == v {
			break
		}
		v = p
	}
	return path
}
