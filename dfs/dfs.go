package dfs

import "github.com/katalvlaran/lvplane/core"

type frame struct {
	vertex    uint32
	edgeIndex uint32
}

// Ctx is the incremental DFS state machine. One Step advances by consuming
// one edge of the frame on top of the stack, or by popping that frame once
// its vertex is exhausted.
type Ctx struct {
	graph     core.Graph
	nodes     []TreeNode
	stack     []frame
	numbering []uint32
	cfg       config
}

// Init returns a Ctx ready to run DFS from root over g.
func Init(g core.Graph, root uint32, opts ...Option) *Ctx {
	cfg := newConfig(opts)
	ctx := &Ctx{
		graph:     g,
		nodes:     make([]TreeNode, g.NumVertices()),
		stack:     make([]frame, 0, g.NumVertices()),
		numbering: make([]uint32, 0, g.NumVertices()),
		cfg:       cfg,
	}
	ctx.nodes[root].Parent = root + 1
	ctx.numbering = append(ctx.numbering, root)
	ctx.stack = append(ctx.stack, frame{vertex: root})
	if cfg.onVisit != nil {
		cfg.onVisit(root)
	}
	return ctx
}

// Step advances the traversal by one edge or one frame pop. It returns true
// once the traversal is complete.
func (ctx *Ctx) Step() bool {
	if len(ctx.stack) == 0 {
		return true
	}

	top := &ctx.stack[len(ctx.stack)-1]
	vInfo := &ctx.nodes[top.vertex]
	deg := ctx.graph.Degree(top.vertex)

	if top.edgeIndex == deg {
		p := vInfo.Parent - 1
		if p != top.vertex {
			pInfo := &ctx.nodes[p]
			pInfo.Lowpoint = min(pInfo.Lowpoint, vInfo.Lowpoint)
		}
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		return false
	}

	u := ctx.graph.Neighbor(top.vertex, top.edgeIndex)
	uInfo := &ctx.nodes[u]
	if uInfo.Parent == 0 {
		uInfo.Number = uint32(len(ctx.numbering))
		uInfo.LeastAncestor = uInfo.Number
		uInfo.Lowpoint = uInfo.Number
		uInfo.Parent = top.vertex + 1

		ctx.numbering = append(ctx.numbering, u)
		ctx.stack = append(ctx.stack, frame{vertex: u})
		if ctx.cfg.onVisit != nil {
			ctx.cfg.onVisit(u)
		}
	} else if u != vInfo.Parent-1 {
		vInfo.LeastAncestor = min(vInfo.LeastAncestor, uInfo.Number)
		vInfo.Lowpoint = min(vInfo.Lowpoint, uInfo.Lowpoint)
	}
	top.edgeIndex++

	return false
}

// Tree returns the DFS tree accumulated so far.
func (ctx *Ctx) Tree() Tree {
	out := make(Tree, len(ctx.nodes))
	copy(out, ctx.nodes)
	return out
}

// Numbering returns the DFS discovery order accumulated so far.
func (ctx *Ctx) Numbering() []uint32 {
	out := make([]uint32, len(ctx.numbering))
	copy(out, ctx.numbering)
	return out
}

// Data bundles the outputs of a full DFS run.
type Data struct {
	Tree      Tree
	Numbering []uint32
}

// Run computes the full DFS tree and discovery numbering rooted at root in
// one call.
func Run(g core.Graph, root uint32, opts ...Option) Data {
	ctx := Init(g, root, opts...)
	for !ctx.Step() {
	}
	return Data{Tree: ctx.Tree(), Numbering: ctx.Numbering()}
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
