package geom

// Gradient pairs a target point with a delta vector to apply to it.
// Optimizers apply a Gradient as point += lr * Delta; a single batch of
// gradients may address the same point more than once, in which case they
// accumulate by being applied in order (see the optim package).
type Gradient struct {
	Point *Point
	Delta Vector
}

// NewGradient constructs a Gradient for the given point and delta.
func NewGradient(p *Point, delta Vector) Gradient {
	return Gradient{Point: p, Delta: delta}
}

// Apply adds lr*Delta to the target point in place.
func (g Gradient) Apply(lr float64) {
	g.Point.Translate(g.Delta.Scale(lr))
}

// ZeroThreshold is the magnitude below which a constraint gradient is
// considered already satisfied and should not be emitted.
const ZeroThreshold = 1e-3

// Batch is a slice of gradients produced together, e.g. all three gradients
// a single shape constraint call emits on a point, center, and control.
type Batch []Gradient

// Apply applies every gradient in the batch, in order, with the given
// learning rate. Earlier gradients can move a point that later gradients in
// the same batch also target; this is intentional, since gradients within a
// batch are meant to compose rather than read a single frozen snapshot.
func (b Batch) Apply(lr float64) {
	for _, g := range b {
		g.Apply(lr)
	}
}
