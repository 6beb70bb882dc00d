package graph

import "github.com/dshills/layoutkit/pkg/geom"

// Endpoint is one end of an edge: the node it attaches to and the specific
// port on that node.
type Endpoint struct {
	Node *Node
	Port *Port
}

// Edge is a unique-id connection between two endpoints, carrying a
// polyline path. The path's first and last points must equal the source
// and target port points; routing is the only process that rewrites it
// after construction.
type Edge struct {
	ID     string
	Source Endpoint
	Target Endpoint
	Path   []geom.Vector
	Meta   map[string]any
}

// ResetPath replaces the edge's path with the straight two-point line
// between its current source and target port points, discarding any
// previously routed polyline.
func (e *Edge) ResetPath() {
	e.Path = []geom.Vector{e.Source.Port.Point.Vector(), e.Target.Port.Point.Vector()}
}
