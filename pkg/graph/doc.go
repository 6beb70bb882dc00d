// Package graph implements the hierarchical node/edge/port data model and
// the storage layer that owns it: id lookup, containment-tree traversal,
// edge adjacency, all-pairs shortest paths over the undirected hop graph,
// and hierarchical ordering.
//
// Storage is constructed once from schemas via [FromSchema] and is
// immutable in topology afterward: node and edge membership, parentage, and
// endpoints never change. Centers, shape controls, port points, and edge
// paths do mutate, under the exclusive control of whatever stage or router
// pass is currently running.
package graph
