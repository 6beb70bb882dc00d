// Package geom provides the 2D vector and gradient primitives the rest of
// the layout engine builds on.
//
// A [Point] is a mutable, identity-bearing 2D coordinate: gradients and
// optimizers address points by reference, not by value, because the same
// logical point (a node's center, a port, a shape's control vector) is
// nudged repeatedly across many constraint and force evaluations. [Vector]
// is the ordinary free-vector algebra used to compute those nudges, and
// [Gradient] pairs a delta with the point it applies to.
package geom
