// Package builder implements the randomized plane-triangulation
// generator: an incremental step function that grows a triangular face mesh
// by barycentric point insertion and admissible edge flips, plus an
// unrestricted/abstract variant that skips the geometric gates.
//
// Configuration follows the functional-options idiom: Option values mutate
// a private config built by newConfig, with WithX constructors validating
// their own arguments (panicking on a nonsensical static value, returning a
// sentinel error only for conditions that can only be known once the
// generator runs, such as a nil RNG).
package builder
