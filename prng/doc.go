// Package prng is a thin deterministic-PRNG facade over math/rand/v2:
// callers in this module only ever need a bounded integer or a unit float,
// never the full math/rand/v2 surface, so the facade keeps call sites to
// two methods and pins the underlying source to a seedable PCG.
package prng
