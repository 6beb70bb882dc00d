package graph

import "fmt"

// Storage is the single owner of a graph's nodes and edges. Topology
// (membership, parentage, edge endpoints) is fixed after construction;
// only geometry (centers, shape controls, port points, edge paths)
// mutates afterward.
type Storage struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[string]*Edge
	edgeOrder []string
	roots     []*Node

	// spCache holds the memoized ShortestPaths result, keyed by the
	// directed flag it was computed with. Topology is immutable once
	// construction finishes (addNode/addEdge only run from FromSchema), so
	// a cached result never goes stale and needs no invalidation.
	spCache map[bool]map[string]map[string]int
}

func newStorage() *Storage {
	return &Storage{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// Node looks up a node by id.
func (s *Storage) Node(id string) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Edge looks up an edge by id.
func (s *Storage) Edge(id string) (*Edge, bool) {
	e, ok := s.edges[id]
	return e, ok
}

// Nodes returns every node, in construction order.
func (s *Storage) Nodes() []*Node {
	out := make([]*Node, len(s.nodeOrder))
	for i, id := range s.nodeOrder {
		out[i] = s.nodes[id]
	}
	return out
}

// Edges returns every edge, in construction order.
func (s *Storage) Edges() []*Edge {
	out := make([]*Edge, len(s.edgeOrder))
	for i, id := range s.edgeOrder {
		out[i] = s.edges[id]
	}
	return out
}

// Roots returns every node with no parent, in construction order.
func (s *Storage) Roots() []*Node {
	out := make([]*Node, len(s.roots))
	copy(out, s.roots)
	return out
}

// Parent returns n's containing node, if any.
func (s *Storage) Parent(n *Node) (*Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

// Children returns n's direct children, in the order n's schema lists them.
func (s *Storage) Children(n *Node) []*Node {
	out := make([]*Node, len(n.Children))
	copy(out, n.Children)
	return out
}

// Siblings returns the other nodes sharing n's parent (or, for a root, the
// other roots).
func (s *Storage) Siblings(n *Node) []*Node {
	var pool []*Node
	if n.parent != nil {
		pool = n.parent.Children
	} else {
		pool = s.roots
	}
	out := make([]*Node, 0, len(pool))
	for _, sib := range pool {
		if sib != n {
			out = append(out, sib)
		}
	}
	return out
}

// Ancestors returns n's ancestor chain, nearest parent first, ending at
// its root.
func (s *Storage) Ancestors(n *Node) []*Node {
	var out []*Node
	for cur := n.parent; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

// Descendants returns every node nested (directly or transitively) under
// n, in preorder.
func (s *Storage) Descendants(n *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, child := range cur.Children {
			out = append(out, child)
			walk(child)
		}
	}
	walk(n)
	return out
}

// HasAncestor reports whether ancestor appears in n's ancestor chain.
func (s *Storage) HasAncestor(n, ancestor *Node) bool {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// HasDescendant reports whether descendant is nested under n.
func (s *Storage) HasDescendant(n, descendant *Node) bool {
	return s.HasAncestor(descendant, n)
}

// HasAncestorOrDescendant reports whether a is an ancestor or a descendant
// of b.
func (s *Storage) HasAncestorOrDescendant(a, b *Node) bool {
	return s.HasAncestor(a, b) || s.HasDescendant(a, b)
}

// LeastCommonAncestor returns the deepest node containing both a and b, or
// ok=false if they share no common ancestor (they lie in different trees).
func (s *Storage) LeastCommonAncestor(a, b *Node) (lca *Node, ok bool) {
	depth := func(n *Node) int {
		d := 0
		for cur := n.parent; cur != nil; cur = cur.parent {
			d++
		}
		return d
	}
	da, db := depth(a), depth(b)
	x, y := a, b
	for da > db {
		x = x.parent
		da--
	}
	for db > da {
		y = y.parent
		db--
	}
	for x != y {
		if x == nil || y == nil {
			return nil, false
		}
		x, y = x.parent, y.parent
	}
	if x == nil {
		return nil, false
	}
	return x, true
}

// GreatestDifferentAncestor returns the pair of ancestors of a and b (u and
// v may be a and b themselves) that share a parent: the highest point in
// the containment tree at which the two diverge. It is only meaningful
// when neither a nor b is an ancestor of the other.
func (s *Storage) GreatestDifferentAncestor(a, b *Node) (u, v *Node, ok bool) {
	if s.HasAncestorOrDescendant(a, b) || a == b {
		return nil, nil, false
	}
	lca, found := s.LeastCommonAncestor(a, b)
	climb := func(n *Node) *Node {
		cur := n
		for {
			var parent *Node
			if cur.parent != nil {
				parent = cur.parent
			}
			if (found && parent == lca) || (!found && parent == nil) {
				return cur
			}
			if parent == nil {
				return cur
			}
			cur = parent
		}
	}
	return climb(a), climb(b), true
}

// EdgesFrom returns edges whose source is n.
func (s *Storage) EdgesFrom(n *Node) []*Edge {
	var out []*Edge
	for _, id := range s.edgeOrder {
		e := s.edges[id]
		if e.Source.Node == n {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo returns edges whose target is n.
func (s *Storage) EdgesTo(n *Node) []*Edge {
	var out []*Edge
	for _, id := range s.edgeOrder {
		e := s.edges[id]
		if e.Target.Node == n {
			out = append(out, e)
		}
	}
	return out
}

// Neighbors returns every node connected to n by an edge in either
// direction, deduplicated, in first-seen order.
func (s *Storage) Neighbors(n *Node) []*Node {
	seen := make(map[*Node]bool)
	var out []*Node
	for _, id := range s.edgeOrder {
		e := s.edges[id]
		var other *Node
		switch n {
		case e.Source.Node:
			other = e.Target.Node
		case e.Target.Node:
			other = e.Source.Node
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	return out
}

// Sources returns every node that is the source endpoint of at least one
// edge, deduplicated, in first-seen order.
func (s *Storage) Sources() []*Node {
	seen := make(map[*Node]bool)
	var out []*Node
	for _, id := range s.edgeOrder {
		n := s.edges[id].Source.Node
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// Targets returns every node that is the target endpoint of at least one
// edge, deduplicated, in first-seen order.
func (s *Storage) Targets() []*Node {
	seen := make(map[*Node]bool)
	var out []*Node
	for _, id := range s.edgeOrder {
		n := s.edges[id].Target.Node
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// ExistsEdge reports whether an edge connects u and v. If undirected is
// false, only source-u/target-v edges count; if true, either direction
// counts.
func (s *Storage) ExistsEdge(u, v *Node, undirected bool) bool {
	for _, id := range s.edgeOrder {
		e := s.edges[id]
		if e.Source.Node == u && e.Target.Node == v {
			return true
		}
		if undirected && e.Source.Node == v && e.Target.Node == u {
			return true
		}
	}
	return false
}

func (s *Storage) addNode(n *Node) error {
	if _, exists := s.nodes[n.ID]; exists {
		return fmt.Errorf("graph: duplicate node id %q", n.ID)
	}
	s.nodes[n.ID] = n
	s.nodeOrder = append(s.nodeOrder, n.ID)
	return nil
}

func (s *Storage) addEdge(e *Edge) error {
	if _, exists := s.edges[e.ID]; exists {
		return fmt.Errorf("graph: duplicate edge id %q", e.ID)
	}
	s.edges[e.ID] = e
	s.edgeOrder = append(s.edgeOrder, e.ID)
	return nil
}
