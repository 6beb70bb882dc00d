package layout

import (
	"github.com/dshills/layoutkit/pkg/force"
	"github.com/dshills/layoutkit/pkg/graph"
	"github.com/dshills/layoutkit/pkg/optim"
)

// Stage pairs a generator with the optimizer that consumes its gradient
// batches, run for a fixed number of inner iterations per driver step.
type Stage struct {
	Name       string
	Iterations int
	Optimizer  optim.Optimizer
	Generator  force.Generator
}

// run executes the stage's Iterations inner iterations against s: each
// iteration asks Generator for a fresh batch sequence, steps Optimizer with
// every batch it yields, then calls Optimizer.Update once.
func (st Stage) run(s *graph.Storage) {
	for i := 0; i < st.Iterations; i++ {
		next := st.Generator(s)
		for {
			batch, ok := next()
			if !ok {
				break
			}
			st.Optimizer.Step(batch)
		}
		st.Optimizer.Update()
	}
}
