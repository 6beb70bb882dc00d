package router

import (
	"math"
	"sort"

	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// vertex is one point in the visibility graph: a grid intersection with up
// to four cardinal neighbors and, if it falls inside some node's shape, the
// frontmost such node.
type vertex struct {
	X, Y      float64
	Node      *graph.Node
	Neighbors [4]*vertex // indexed by Direction North/South/East/West - 1
}

func (v *vertex) neighbor(d Direction) *vertex {
	if d < North || d > West {
		return nil
	}
	return v.Neighbors[d-North]
}

func (v *vertex) setNeighbor(d Direction, n *vertex) {
	v.Neighbors[d-North] = n
}

func (v *vertex) point() geom.Vector {
	return geom.Vector{X: v.X, Y: v.Y}
}

// hLine is a horizontal candidate ray at height y, spanning [xMin, xMax].
type hLine struct {
	y, xMin, xMax float64
	verts         []*vertex
}

// vLine is a vertical candidate ray at x, spanning [yMin, yMax].
type vLine struct {
	x, yMin, yMax float64
	verts         []*vertex
}

// visibilityGraph is the full set of route vertices built for one Storage,
// plus the lookups the router needs to find start/end vertices per edge.
type visibilityGraph struct {
	vertices    []*vertex
	portVertex  map[*graph.Port]*vertex
	centerOf    map[*graph.Node]*vertex
}

const coordScale = 1e6

// lineEpsilon absorbs floating point drift when testing whether a vertical
// line's x falls within a horizontal line's span (or vice versa).
const lineEpsilon = 1e-6

func coordKey(x, y float64) [2]int64 {
	return [2]int64{int64(math.Round(x * coordScale)), int64(math.Round(y * coordScale))}
}

// buildVisibilityGraph constructs the router's grid for s: the outer
// boundary, each node's margin/center lines, and each non-center port's
// lines, intersected pairwise into vertices, each assigned the frontmost
// node it falls inside.
func buildVisibilityGraph(s *graph.Storage, cfg Config) *visibilityGraph {
	bounds := s.Bounds()
	outer := bounds
	outer.MinX -= cfg.OuterGap
	outer.MinY -= cfg.OuterGap
	outer.MaxX += cfg.OuterGap
	outer.MaxY += cfg.OuterGap

	var hLines []*hLine
	var vLines []*vLine

	addH := func(y, xMin, xMax float64) *hLine {
		l := &hLine{y: y, xMin: xMin, xMax: xMax}
		hLines = append(hLines, l)
		return l
	}
	addV := func(x, yMin, yMax float64) *vLine {
		l := &vLine{x: x, yMin: yMin, yMax: yMax}
		vLines = append(vLines, l)
		return l
	}

	// Phase 1a: the four outer boundary lines.
	addH(outer.MinY, outer.MinX, outer.MaxX)
	addH(outer.MaxY, outer.MinX, outer.MaxX)
	addV(outer.MinX, outer.MinY, outer.MaxY)
	addV(outer.MaxX, outer.MinY, outer.MaxY)

	portLines := make(map[*graph.Port][2]int) // port -> (hLine index, vLine index)
	centerLines := make(map[*graph.Node][2]int)

	for _, n := range s.Nodes() {
		nb := n.Shape.Bounds()
		addH(nb.MinY-cfg.NodeMargin, nb.MinX-cfg.NodeMargin, nb.MaxX+cfg.NodeMargin)
		addH(nb.MaxY+cfg.NodeMargin, nb.MinX-cfg.NodeMargin, nb.MaxX+cfg.NodeMargin)
		addV(nb.MinX-cfg.NodeMargin, nb.MinY-cfg.NodeMargin, nb.MaxY+cfg.NodeMargin)
		addV(nb.MaxX+cfg.NodeMargin, nb.MinY-cfg.NodeMargin, nb.MaxY+cfg.NodeMargin)

		addH(n.Center.Y, outer.MinX, outer.MaxX)
		addV(n.Center.X, outer.MinY, outer.MaxY)
		centerLines[n] = [2]int{len(hLines) - 1, len(vLines) - 1}

		for _, p := range n.Ports {
			if p.Location == graph.Center {
				continue
			}
			addH(p.Point.Y, outer.MinX, outer.MaxX)
			addV(p.Point.X, outer.MinY, outer.MaxY)
			portLines[p] = [2]int{len(hLines) - 1, len(vLines) - 1}
		}
	}

	// Phase 1b: intersect every horizontal with every vertical within
	// their extents, interning one vertex object per coordinate.
	byCoord := make(map[[2]int64]*vertex)
	intern := func(x, y float64) *vertex {
		key := coordKey(x, y)
		if v, ok := byCoord[key]; ok {
			return v
		}
		v := &vertex{X: x, Y: y}
		byCoord[key] = v
		return v
	}

	for _, h := range hLines {
		for _, v := range vLines {
			if v.x < h.xMin-lineEpsilon || v.x > h.xMax+lineEpsilon {
				continue
			}
			if h.y < v.yMin-lineEpsilon || h.y > v.yMax+lineEpsilon {
				continue
			}
			vert := intern(v.x, h.y)
			h.verts = append(h.verts, vert)
			v.verts = append(v.verts, vert)
		}
	}

	// Phase 1c: assign each vertex its frontmost containing node, using
	// the reversed hierarchical sort (innermost-first).
	order := s.HierarchicalSort()
	reversed := make([]*graph.Node, len(order))
	for i, n := range order {
		reversed[len(order)-1-i] = n
	}
	for _, vert := range byCoord {
		for _, n := range reversed {
			if n.Shape.Contains(vert.point(), 0) {
				vert.Node = n
				break
			}
		}
	}

	// Phase 1d: link consecutive vertices on each line as neighbors.
	for _, h := range hLines {
		sort.Slice(h.verts, func(i, j int) bool { return h.verts[i].X < h.verts[j].X })
		for i := 0; i+1 < len(h.verts); i++ {
			a, b := h.verts[i], h.verts[i+1]
			a.setNeighbor(East, b)
			b.setNeighbor(West, a)
		}
	}
	for _, v := range vLines {
		sort.Slice(v.verts, func(i, j int) bool { return v.verts[i].Y < v.verts[j].Y })
		for i := 0; i+1 < len(v.verts); i++ {
			a, b := v.verts[i], v.verts[i+1]
			a.setNeighbor(South, b)
			b.setNeighbor(North, a)
		}
	}

	vg := &visibilityGraph{
		portVertex: make(map[*graph.Port]*vertex),
		centerOf:   make(map[*graph.Node]*vertex),
	}
	for _, vert := range byCoord {
		vg.vertices = append(vg.vertices, vert)
	}
	for p, idx := range portLines {
		vg.portVertex[p] = intern(vLines[idx[1]].x, hLines[idx[0]].y)
	}
	for n, idx := range centerLines {
		vg.centerOf[n] = intern(vLines[idx[1]].x, hLines[idx[0]].y)
	}
	return vg
}
