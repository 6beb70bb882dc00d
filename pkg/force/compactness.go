package force

import (
	"github.com/dshills/layoutkit/pkg/constraint"
	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// Compactness nudges every child toward its parent's center by a constant
// strength, pulling nested subgraphs tight around their container.
func Compactness(strength float64) Generator {
	return func(s *graph.Storage) Next {
		var batches []geom.Batch
		for _, n := range s.Nodes() {
			parent, ok := s.Parent(n)
			if !ok || n.Fixed {
				continue
			}
			dir := parent.Center.Sub(n.Center)
			if batch := constraint.NudgePoint(n.Center, strength, dir); len(batch) > 0 {
				batches = append(batches, batch)
			}
		}
		return fromSlice(batches)
	}
}
