// Package pio implements binary serialization of core.Graph and
// core.GraphAug: a small length-prefixed little-endian wire format, bit-for-
// bit reproducible across Push and Pop, plus a structural validator that
// checks adjacency stays in range without tracing faces (core.PlaneValidate
// does that heavier check; pio.Validate is the cheaper structural one that
// a reader runs immediately after Pop).
package pio
