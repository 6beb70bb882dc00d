package constraint

import (
	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// ConstrainShapesWithin grows n's shape so its bounds enclose every direct
// child's bounds plus padding: each overhanging child is pulled inward and
// n's control grows. n's center is not moved; the whole shape share of each
// correction goes to growing the control.
func ConstrainShapesWithin(n *graph.Node, padding float64) geom.Batch {
	var batch geom.Batch
	for _, child := range n.Children {
		batch = append(batch, n.Shape.ConstrainShapeWithin(child.Shape, nodeMass(child), nodeMass(n), 1, -padding)...)
	}
	return batch
}

// kPortSeparation is the minimum gap enforced between ordered ports
// sharing the same location.
const kPortSeparation = 4.0

// portMass biases a port heavily toward absorbing its own placement
// correction rather than moving the node center it's attached to: the split
// is inverse to mass, so the port's tiny mass gives it the whole delta.
const portMass = 1 / infiniteMass

// tangentAxis returns the axis along which ports at loc are ordered: X
// for north/south (ports run left-right along the top/bottom edge), Y for
// east/west.
func tangentAxis(loc graph.Location) geom.Vector {
	switch loc {
	case graph.North, graph.South:
		return geom.Vector{X: 1, Y: 0}
	default:
		return geom.Vector{X: 0, Y: 1}
	}
}

// ConstrainPortPlacement enforces every port's location constraint: a
// cardinal port sits at the node's center offset by the shape's boundary
// along that side's outward normal, with tangential displacement bounded
// by the perpendicular half-extent; ordered ports at the same location
// keep at least kPortSeparation between consecutive orders. Unlocated
// ports (including Center) are constrained to coincide with the node
// center.
func ConstrainPortPlacement(n *graph.Node) geom.Batch {
	var batch geom.Batch
	massNode := nodeMass(n)

	byLocation := make(map[graph.Location][]*graph.Port)
	for _, p := range n.Ports {
		byLocation[p.Location] = append(byLocation[p.Location], p)
	}

	for loc, ports := range byLocation {
		if loc == graph.Unlocated || loc == graph.Center {
			for _, p := range ports {
				batch = append(batch, NudgePoint(p.Point, 1, n.Center.Sub(p.Point))...)
			}
			continue
		}
		normal := boundaryNormal(loc)
		tangent := tangentAxis(loc)
		for _, p := range ports {
			boundary := n.Shape.Boundary(normal, 0)
			batch = append(batch, ConstrainOffset(n.Center, p.Point, Equal, boundary.Sub(n.Center.Vector()).Dot(normal), normal, massNode, portMass)...)
			batch = append(batch, ConstrainDistance(n.Center, p.Point, AtMost, perpHalfExtent(n, loc), &tangent, massNode, portMass)...)
		}
		batch = append(batch, orderedSeparation(ports, tangent)...)
	}
	return batch
}

func boundaryNormal(loc graph.Location) geom.Vector {
	switch loc {
	case graph.North:
		return geom.Vector{X: 0, Y: -1}
	case graph.South:
		return geom.Vector{X: 0, Y: 1}
	case graph.East:
		return geom.Vector{X: 1, Y: 0}
	default:
		return geom.Vector{X: -1, Y: 0}
	}
}

func perpHalfExtent(n *graph.Node, loc graph.Location) float64 {
	b := n.Shape.Bounds()
	switch loc {
	case graph.North, graph.South:
		return b.Width() / 2
	default:
		return b.Height() / 2
	}
}

// orderedSeparation constrains ports with a defined Order, sorted by
// order, to be at least kPortSeparation apart along tangent.
func orderedSeparation(ports []*graph.Port, tangent geom.Vector) geom.Batch {
	ordered := make([]*graph.Port, 0, len(ports))
	for _, p := range ports {
		if p.Order != nil {
			ordered = append(ordered, p)
		}
	}
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if *ordered[i].Order > *ordered[j].Order {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}
	var batch geom.Batch
	for i := 1; i < len(ordered); i++ {
		batch = append(batch, ConstrainOffset(ordered[i-1].Point, ordered[i].Point, AtLeast, kPortSeparation, tangent, portMass, portMass)...)
	}
	return batch
}
