package force

import (
	"github.com/dshills/layoutkit/pkg/constraint"
	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// Centering nudges every free root toward the negated midpoint of the
// storage's current bounds, scaled by strength, so the whole layout drifts
// toward the origin instead of drifting off in whatever direction the
// other forces happen to push it.
func Centering(strength float64) Generator {
	return func(s *graph.Storage) Next {
		roots := s.Roots()
		if len(roots) == 0 {
			return fromSlice(nil)
		}
		bounds := s.Bounds()
		mid := geom.Vector{X: (bounds.MinX + bounds.MaxX) / 2, Y: (bounds.MinY + bounds.MaxY) / 2}
		target := mid.Neg()

		var batches []geom.Batch
		for _, r := range roots {
			if r.Fixed {
				continue
			}
			if batch := constraint.NudgePoint(r.Center, strength, target); len(batch) > 0 {
				batches = append(batches, batch)
			}
		}
		return fromSlice(batches)
	}
}
