// Package shape implements the convex node boundaries nodes use for their
// geometry: axis-aligned bounds, boundary/support-point queries along a
// direction, containment tests, and the gradient-producing constraints that
// keep a point on a shape's boundary or a child shape inside a parent.
//
// Two concrete shapes are provided, [Rectangle] and [Circle], both
// implementing [Shape]. A shape is anchored at a node's center (a
// [geom.Point] the shape does not own) and owns a mutable control vector
// (half-extents for a rectangle, radius for a circle) that optimization may
// grow or shrink.
package shape
