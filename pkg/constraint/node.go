package constraint

import (
	"math"

	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// nodeMass treats a fixed node as effectively immovable and a free node as
// unit mass, so every mass-weighted split in this package also enforces
// "fixed nodes must not move under optimization" without special-casing
// every call site.
func nodeMass(n *graph.Node) float64 {
	if n.Fixed {
		return infiniteMass
	}
	return 1
}

// translateSubtree applies delta to n's center and to every descendant's
// center, so a moved node carries its whole subtree rigidly with it.
func translateSubtree(s *graph.Storage, n *graph.Node, delta geom.Vector) geom.Batch {
	batch := geom.Batch{geom.NewGradient(n.Center, delta)}
	for _, d := range s.Descendants(n) {
		batch = append(batch, geom.NewGradient(d.Center, delta))
	}
	return batch
}

// PositionNoOverlap resolves an intersection between u and v's shape
// bounds by separating their centers along whichever axis needs the
// smaller correction. Moving a node carries its whole subtree with it.
func PositionNoOverlap(s *graph.Storage, u, v *graph.Node) geom.Batch {
	ub, vb := u.Shape.Bounds(), v.Shape.Bounds()
	if !ub.Overlaps(vb) {
		return nil
	}
	uhw, uhh := ub.Width()/2, ub.Height()/2
	vhw, vhh := vb.Width()/2, vb.Height()/2

	dx := v.Center.X - u.Center.X
	dy := v.Center.Y - u.Center.Y
	neededX := (uhw + vhw) - math.Abs(dx)
	neededY := (uhh + vhh) - math.Abs(dy)

	var dir geom.Vector
	var magnitude float64
	if neededX <= neededY {
		sign := 1.0
		if dx < 0 {
			sign = -1
		}
		dir = geom.Vector{X: sign, Y: 0}
		magnitude = neededX
	} else {
		sign := 1.0
		if dy < 0 {
			sign = -1
		}
		dir = geom.Vector{X: 0, Y: sign}
		magnitude = neededY
	}
	if magnitude < geom.ZeroThreshold {
		return nil
	}

	massU, massV := nodeMass(u), nodeMass(v)
	total := massU + massV
	if total <= 0 {
		return nil
	}
	wU := massV / total
	wV := massU / total

	var batch geom.Batch
	if uDelta := dir.Scale(-magnitude * wU); uDelta.Length() >= geom.ZeroThreshold {
		batch = append(batch, translateSubtree(s, u, uDelta)...)
	}
	if vDelta := dir.Scale(magnitude * wV); vDelta.Length() >= geom.ZeroThreshold {
		batch = append(batch, translateSubtree(s, v, vDelta)...)
	}
	return batch
}

// PositionAlignment constrains the projection of u and v's centers onto
// axis's perpendicular to zero, lining them up along axis.
func PositionAlignment(u, v *graph.Node, axis geom.Vector) geom.Batch {
	perp := axis.Normalize().Perp()
	return ConstrainOffset(u.Center, v.Center, Equal, 0, perp, nodeMass(u), nodeMass(v))
}

// interiorHalfExtent returns the half-extent of n's shape along the line
// toward other's center: the half-width if the line is more horizontal
// than vertical, otherwise the half-height.
func interiorHalfExtent(n, other *graph.Node) float64 {
	b := n.Shape.Bounds()
	dx := other.Center.X - n.Center.X
	dy := other.Center.Y - n.Center.Y
	if math.Abs(dx) >= math.Abs(dy) {
		return b.Width() / 2
	}
	return b.Height() / 2
}

// PositionSeparation constrains the center distance between u and v to
// separation plus each node's interior half-extent along the line between
// them.
func PositionSeparation(u, v *graph.Node, op Op, separation float64, massU, massV float64) geom.Batch {
	target := separation + interiorHalfExtent(u, v) + interiorHalfExtent(v, u)
	return ConstrainDistance(u.Center, v.Center, op, target, nil, massU, massV)
}

// PositionGridSnap constrains u's center to the nearest lower grid point
// on a dx-by-dy grid.
func PositionGridSnap(u *graph.Node, dx, dy float64) geom.Batch {
	targetX := math.Floor(u.Center.X/dx) * dx
	targetY := math.Floor(u.Center.Y/dy) * dy
	delta := geom.Vector{X: targetX - u.Center.X, Y: targetY - u.Center.Y}
	if delta.Length() < geom.ZeroThreshold {
		return nil
	}
	return geom.Batch{geom.NewGradient(u.Center, delta)}
}
