package optim

import "github.com/dshills/layoutkit/pkg/geom"

// Optimizer applies gradient batches to points with a learning rate policy.
// Step applies each gradient in the batch in order; Update advances whatever
// internal rate/timestep state the variant keeps, and is called once per
// driver iteration rather than once per batch.
type Optimizer interface {
	Step(batch geom.Batch)
	Update()
}
