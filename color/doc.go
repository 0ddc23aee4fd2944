// Package color defines the Coloring and List types shared by p3color and
// p3choose, plus PathColorVerify, the ground-truth checker both algorithms'
// test suites use: a coloring is a path coloring iff every color class
// induces a disjoint union of simple paths.
//
// List is the up-to-3-element candidate-color array consumed by p3choose;
// HasColor/RemoveColor/ColorDifferently are the in-place mutators its state
// machine uses to narrow a vertex's list down to one committed color.
package color
