package force

import (
	"github.com/dshills/layoutkit/pkg/constraint"
	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// ChildContainment yields, per node with children, the gradients that keep
// its shape enclosing every direct child's shape with the given padding
// (see [constraint.ConstrainShapesWithin]).
func ChildContainment(padding float64) Generator {
	return func(s *graph.Storage) Next {
		var batches []geom.Batch
		for _, n := range s.Nodes() {
			if len(n.Children) == 0 {
				continue
			}
			if batch := constraint.ConstrainShapesWithin(n, padding); len(batch) > 0 {
				batches = append(batches, batch)
			}
		}
		return fromSlice(batches)
	}
}
