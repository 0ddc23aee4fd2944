// Package geom provides the minimal 2D vector and affine-transform
// arithmetic the triangulation generator needs to place and evaluate
// candidate points: Vec2 addition/subtraction/scaling/dot-product, signed triangle
// area, and Aff2 application.
//
// These operations are consumed exclusively by the builder package; no
// coloring logic ever inspects a Vec2, matching the contract that the
// embedding is cosmetic to the combinatorial structure.
package geom
