package force

import (
	"github.com/dshills/layoutkit/pkg/constraint"
	"github.com/dshills/layoutkit/pkg/geom"
	"github.com/dshills/layoutkit/pkg/graph"
)

// Generator produces, for a given storage, a fresh pull-based sequence of
// gradient batches. Calling a Generator again (e.g. on the next driver
// iteration) must produce an independent, restarted sequence; the returned
// Next closure itself is finite and exhausts after its last batch.
type Generator func(s *graph.Storage) Next

// Next pulls the next gradient batch from a sequence. ok is false once the
// sequence is exhausted, at which point batch is nil and must be ignored.
type Next func() (batch geom.Batch, ok bool)

// fromSlice turns a precomputed slice of batches into a Next closure,
// the simplest possible restartable sequence: generators that can cheaply
// enumerate all their batches up front build on this rather than writing
// their own index bookkeeping.
func fromSlice(batches []geom.Batch) Next {
	i := 0
	return func() (geom.Batch, bool) {
		if i >= len(batches) {
			return nil, false
		}
		b := batches[i]
		i++
		return b, true
	}
}

// freeWeight is 0 for a fixed node and 1 for a free one. Force generators
// scale a nudge's magnitude by each endpoint's freeWeight rather than
// splitting by inverse mass (pkg/constraint's convention): a fixed node's
// share of the nudge is dropped entirely, not redistributed.
func freeWeight(n *graph.Node) float64 {
	if n.Fixed {
		return 0
	}
	return 1
}

// pushApart nudges u and v along the line between their centers by mag: a
// positive mag pushes them apart, a negative one pulls them together. Every
// generator in this package funnels its center-to-center nudges through
// this single sign convention so "attract" and "repel" never get confused
// at a call site.
func pushApart(u, v *graph.Node, mag float64) geom.Batch {
	return constraint.NudgePair(u.Center, v.Center, [2]float64{mag * freeWeight(u), mag * freeWeight(v)})
}
