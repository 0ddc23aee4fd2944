// Package bfs implements incremental breadth-first search over a
// core.Graph, producing a Tree of {Parent, Dist} records and a PathToRoot
// reconstruction helper.
//
// Unlike a classic recursive BFS, Run drives an explicit step function
// (Ctx.Step) one edge or one dequeue at a time: a vertex's Parent field
// doubles as its "visited" sentinel (0 means unvisited, v+1 marks the root
// itself), which keeps the per-vertex state to two uint32s and avoids a
// separate visited bitmap.
//
// Options follow the functional-options idiom used throughout lvplane:
// WithOnVisit attaches a hook called the first time a vertex is discovered.
package bfs
