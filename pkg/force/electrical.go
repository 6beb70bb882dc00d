package force

import (
	"math"

	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// SpringElectricalConfig configures [SpringElectrical].
type SpringElectricalConfig struct {
	IdealLength       IdealLength
	EdgeStrength      float64
	RepulsiveStrength float64
}

// SpringElectrical implements an Eades-style spring-electrical force: a
// Hookean attraction along existing edges, and an inverse-distance
// repulsion between every other ancestor-unrelated pair.
func SpringElectrical(cfg SpringElectricalConfig) Generator {
	return func(s *graph.Storage) Next {
		nodes := s.Nodes()
		var batches []geom.Batch
		for _, pair := range unorderedPairs(nodes) {
			u, v := pair[0], pair[1]
			if s.HasAncestorOrDescendant(u, v) {
				continue
			}
			actual := boundaryToBoundary(u, v)
			if actual == 0 {
				continue
			}

			var mag float64
			if s.ExistsEdge(u, v, true) {
				// Hookean spring: tension pulls together when stretched
				// past ideal, so the push-apart sign is negated.
				mag = -cfg.EdgeStrength * (actual - cfg.IdealLength(u, v))
			} else {
				// Always pushes apart, even when the boundaries already
				// overlap (actual < 0): the force magnitude depends on
				// the gap's size, not its sign.
				mag = cfg.RepulsiveStrength / math.Abs(actual)
			}
			if batch := pushApart(u, v, mag); len(batch) > 0 {
				batches = append(batches, batch)
			}
		}
		return fromSlice(batches)
	}
}
