// Package arena provides a fixed-size bump allocator: a backing buffer
// handed out in typed slices via Alloc, with Snapshot/Restore giving scoped
// acquisition (snapshot on entry, allocate working storage, restore to
// discard it once a result has been copied out).
//
// No other lvplane package allocates from an Arena. Callers size an arena up
// front (for graph data, from the planar bound |E| <= 3|V|-6), so exhausting
// it mid-run is a programmer error and Alloc panics rather than growing.
package arena
