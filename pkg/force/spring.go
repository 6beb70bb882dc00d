package force

import (
	"math"

	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// IdealLength computes the ideal unit edge length between two nodes; most
// callers want a constant, but it may vary per pair (e.g. to give certain
// node kinds more breathing room).
type IdealLength func(u, v *graph.Node) float64

// ConstantIdealLength returns an IdealLength that ignores its arguments.
func ConstantIdealLength(length float64) IdealLength {
	return func(u, v *graph.Node) float64 { return length }
}

// SpringConfig configures [Spring] and [CompoundSpring].
type SpringConfig struct {
	IdealLength   IdealLength
	MaxAttraction float64
}

// boundaryToBoundary returns the gap between u and v's shape boundaries
// measured along the straight line between their centers: the center
// distance minus each shape's boundary offset along that axis. It is
// negative when the shapes overlap.
func boundaryToBoundary(u, v *graph.Node) float64 {
	centerDist := v.Center.Sub(u.Center)
	total := centerDist.Length()
	if total == 0 {
		return 0
	}
	dir := centerDist.Normalize()
	uOffset := u.Shape.Boundary(dir, 0).Sub(u.Center.Vector()).Length()
	vOffset := v.Shape.Boundary(dir.Neg(), 0).Sub(v.Center.Vector()).Length()
	return total - uOffset - vOffset
}

func unorderedPairs(nodes []*graph.Node) [][2]*graph.Node {
	var pairs [][2]*graph.Node
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			pairs = append(pairs, [2]*graph.Node{nodes[i], nodes[j]})
		}
	}
	return pairs
}

// Spring implements a plain spring force: attraction between
// shortest-path-connected pairs pulled further apart than their ideal
// distance, and repulsion between siblings pushed closer than ideal. Only
// pairs with a finite shortest path are considered, so siblings with no
// path between them are not repelled.
func Spring(cfg SpringConfig) Generator {
	return func(s *graph.Storage) Next {
		nodes := s.Nodes()
		dist := s.ShortestPaths(false)
		var batches []geom.Batch
		for _, pair := range unorderedPairs(nodes) {
			u, v := pair[0], pair[1]
			if u.Fixed && v.Fixed {
				continue
			}
			if s.HasAncestorOrDescendant(u, v) {
				continue
			}
			hops, ok := dist[u.ID][v.ID]
			if !ok || hops == 0 {
				continue
			}
			ideal := float64(hops) * cfg.IdealLength(u, v)
			actual := boundaryToBoundary(u, v)
			connected := s.ExistsEdge(u, v, true)

			var batch geom.Batch
			switch {
			case connected && actual > ideal:
				mag := math.Min(actual-ideal, cfg.MaxAttraction)
				batch = pushApart(u, v, -mag)
			case actual < ideal && isSibling(s, u, v):
				mag := (ideal - actual) / (float64(hops) * float64(hops))
				batch = pushApart(u, v, mag)
			}
			if len(batch) > 0 {
				batches = append(batches, batch)
			}
		}
		return fromSlice(batches)
	}
}

func isSibling(s *graph.Storage, u, v *graph.Node) bool {
	for _, sib := range s.Siblings(u) {
		if sib == v {
			return true
		}
	}
	return false
}

// CompoundSpring is the compound variant of Spring: repulsion only runs
// between direct siblings, and attraction only runs between each edge's
// "greatest different ancestors" (the highest pair of nodes at which the
// edge's endpoints diverge), so edges between descendants of nested groups
// pull those groups together rather than yanking individual leaves across
// group boundaries.
func CompoundSpring(cfg SpringConfig) Generator {
	return func(s *graph.Storage) Next {
		nodes := s.Nodes()
		var batches []geom.Batch

		for _, pair := range unorderedPairs(nodes) {
			u, v := pair[0], pair[1]
			if u.Fixed && v.Fixed || !isSibling(s, u, v) {
				continue
			}
			actual := boundaryToBoundary(u, v)
			ideal := cfg.IdealLength(u, v)
			if actual >= ideal {
				continue
			}
			batch := pushApart(u, v, ideal-actual)
			if len(batch) > 0 {
				batches = append(batches, batch)
			}
		}

		for _, e := range s.Edges() {
			gu, gv, ok := s.GreatestDifferentAncestor(e.Source.Node, e.Target.Node)
			if !ok {
				continue
			}
			if gu.Fixed && gv.Fixed {
				continue
			}
			actual := boundaryToBoundary(gu, gv)
			ideal := cfg.IdealLength(gu, gv)
			if actual <= ideal {
				continue
			}
			mag := math.Min(actual-ideal, cfg.MaxAttraction)
			batch := pushApart(gu, gv, -mag)
			if len(batch) > 0 {
				batches = append(batches, batch)
			}
		}

		return fromSlice(batches)
	}
}
