package graph

import (
	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/shape"
)

// Location names the cardinal side of a shape a port sits on, or Center
// for a port that coincides with the node's center.
type Location string

const (
	North  Location = "north"
	South  Location = "south"
	East   Location = "east"
	West   Location = "west"
	Center Location = "center"
	// Unlocated marks a port with no location constraint: it is only
	// constrained to coincide with the node center.
	Unlocated Location = ""
)

// Port is a named point on or inside a node's shape where an edge attaches.
type Port struct {
	Name     string
	Point    *geom.Point
	Location Location
	// Order ranks ports sharing the same Location along that side; nil
	// means unordered.
	Order *int

	node *Node
}

// Node returns the port's owning node.
func (p *Port) Node() *Node {
	return p.node
}

// Node is a graph entity with a unique id, a center point, a convex shape,
// an optional fixed flag, an ordered list of children, and named ports.
type Node struct {
	ID       string
	Center   *geom.Point
	Shape    shape.Shape
	Fixed    bool
	Children []*Node
	Ports    map[string]*Port
	Meta     map[string]any

	parent *Node
}

// Parent returns the node's containing node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Port looks up a named port, or nil if the node has none by that name.
func (n *Node) Port(name string) *Port {
	return n.Ports[name]
}
