package graph

import (
	"math"
	"sort"

	"github.com/dshills/layoutkit/pkg/shape"
)

const unreachable = math.MaxInt32

// ShortestPaths returns the all-pairs hop distance over the edge graph
// (unit weights), computed via Floyd-Warshall on first call and cached
// thereafter (topology cannot change once a Storage is constructed). If
// directed is false, every edge is treated as bidirectional. Distance from
// a node to itself is 0; disconnected pairs are simply absent from the
// result.
func (s *Storage) ShortestPaths(directed bool) map[string]map[string]int {
	if cached, ok := s.spCache[directed]; ok {
		return cached
	}

	n := len(s.nodeOrder)
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = unreachable
			}
		}
	}
	index := make(map[string]int, n)
	for i, id := range s.nodeOrder {
		index[id] = i
	}
	for _, id := range s.edgeOrder {
		e := s.edges[id]
		i, j := index[e.Source.Node.ID], index[e.Target.Node.ID]
		dist[i][j] = 1
		if !directed {
			dist[j][i] = 1
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == unreachable {
					continue
				}
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}
	out := make(map[string]map[string]int, n)
	for i, uid := range s.nodeOrder {
		row := make(map[string]int)
		for j, vid := range s.nodeOrder {
			if dist[i][j] != unreachable {
				row[vid] = dist[i][j]
			}
		}
		out[uid] = row
	}
	if s.spCache == nil {
		s.spCache = make(map[bool]map[string]map[string]int, 2)
	}
	s.spCache[directed] = out
	return out
}

// Bounds returns the axis-aligned box enclosing every node's shape bounds
// and every edge path point.
func (s *Storage) Bounds() shape.Rect {
	first := true
	var b shape.Rect
	grow := func(r shape.Rect) {
		if first {
			b = r
			first = false
			return
		}
		b = b.Union(r)
	}
	for _, id := range s.nodeOrder {
		grow(s.nodes[id].Shape.Bounds())
	}
	for _, id := range s.edgeOrder {
		for _, p := range s.edges[id].Path {
			grow(shape.Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
		}
	}
	return b
}

// HierarchicalSort returns every node in containment-tree order, outermost
// (roots) first, each followed by its full subtree before the next root.
// Reversed, this is the innermost-first "front to back" order the router
// uses to assign the frontmost containing node to a vertex.
func (s *Storage) HierarchicalSort() []*Node {
	roots := make([]*Node, len(s.roots))
	copy(roots, s.roots)
	sort.Slice(roots, func(i, j int) bool { return roots[i].ID < roots[j].ID })

	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}
