// Package constraint is the gradient library: point-level constraints
// (distance, offset, angle) and node-level helpers (non-overlap,
// alignment, separation, grid snap, containment, port placement) that
// force generators and callers compose into layout stages.
//
// Every entry returns a (possibly empty) [geom.Batch]; an empty result
// means the constraint is already satisfied within [geom.ZeroThreshold].
package constraint
