// Package p3choose implements Hartman's 3-list-path-coloring algorithm: a
// linear-time list-coloring of a plane triangulation from per-vertex
// candidate lists of size at most 3, where one distinguished outer-face
// vertex is pre-colored and every color class ends up a disjoint union of
// simple paths, exactly as p3color guarantees for the unlisted
// 3-path-coloring case.
//
// The state machine walks the outer face inward one "fan" at a time,
// narrowing each newcomer vertex's list as it is absorbed and splitting off
// a new frame whenever the fan forks into two independent
// sub-triangulations. It operates on a core.GraphAug so each fan step can
// cross an edge and resume rotation on the far side in O(1) via
// AugNb.BackIndex.
//
// sequential.go holds the single-goroutine driver; parallel.go holds the
// frame-stealing concurrent driver, mirroring p3color's own split.
package p3choose
