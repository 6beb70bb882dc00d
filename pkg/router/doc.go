// Package router implements the orthogonal edge router: it builds a
// visibility graph of horizontal and vertical grid lines derived from node
// boundaries, centers, and ports, then runs a bend-aware A* search per
// edge to produce an axis-aligned polyline path.
//
// Nudging overlapping parallel segments apart (ordering parallel routes
// within a shared corridor) is an open extension point and is not
// implemented here; routed paths may overlap when multiple edges share a
// corridor.
package router
